package domain

// TeamMember is one entry in the published team roster. Ids are small
// sequential integers assigned when the default roster is built and are
// stable for the lifetime of a snapshot.
type TeamMember struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Category string `json:"category"`
}
