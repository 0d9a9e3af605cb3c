package roster

// Seed is one curated roster entry before image resolution.
type Seed struct {
	Name     string
	Role     string
	Bio      string
	Category string
}

// DefaultInventory lists the team photos that ship with the site. Filenames
// are kept verbatim, mixed extensions and apostrophe variants included,
// because they mirror what is actually on disk under the image root.
func DefaultInventory() Inventory {
	return Inventory{
		{Name: "Abdugʻafurova Asal Shuxratjonovna", File: "Abdugʻafurova Asal Shuxratjonovna.JPG"},
		{Name: "Alibek Toshmuratov Abdisattor oʻgʻli", File: "Alibek Toshmuratov Abdisattor oʻgʻli.JPG"},
		{Name: "Ashurov Javohir", File: "Ashurov Javohir.JPG"},
		{Name: "Barotova Shaxrizoda", File: "Barotova Shaxrizoda.jpg"},
		{Name: "Bobonazarova Binafsha Behzodovna", File: "Bobonazarova Binafsha Behzodovna.jpg"},
		{Name: "Boynazarova Shukrona Sheraliyevna", File: "Boynazarova Shukrona Sheraliyevna.jpg"},
		{Name: "Charos Mamayusupova Barot qizi", File: "Charos Mamayusupova Barot qizi.jpg"},
		{Name: "Eshmamatov Asilbek Oybek oʻgʻli", File: "Eshmamatov Asilbek Oybek oʻgʻli.JPG"},
		{Name: "Eshmoʻminova Mushtariy Otabek qizi", File: "Eshmoʻminova Mushtariy Otabek qizi.jpg"},
		{Name: "Farhodova Fozila Uygunovna", File: "Farhodova Fozila Uygunovna.jpg"},
		{Name: "Fayzullayev Ramziddin Demir o'g'li", File: "Fayzullayev Ramziddin Demir o'g'li.jpg"},
		{Name: "Firdavs Xudoyberdiyev Suxrob o'g'li", File: "Firdavs Xudoyberdiyev Suxrob o'g'li.jpg"},
		{Name: "Gulboyev Muhammadali Sultonbek òĝli", File: "Gulboyev Muhammadali Sultonbek òĝli.JPG"},
		{Name: "Jo'rayev Dilnur Jasurovich", File: "Jo'rayev Dilnur Jasurovich.JPG"},
		{Name: "Madiev Sardor Kenja o'g'li", File: "Madiev Sardor Kenja o'g'li.JPG"},
		{Name: "Murotov Manuchekhr Sulaymonkulovich", File: "Murotov Manuchekhr Sulaymonkulovich.JPG"},
		{Name: "Nurbek Salomov Choriyevich", File: "Nurbek Salomov Choriyevich.jpg"},
		{Name: "Rizvonbek Hamroqulov Firo'z o'g'li", File: "Rizvonbek Hamroqulov Firo'z o'g'li.png"},
		{Name: "Ro'ziyev Mirsaid Baxtiyor o'g'li", File: "Ro'ziyev Mirsaid Baxtiyor o'g'li.JPG"},
		{Name: "Tojinorova Sitora Muhammadi qizi", File: "Tojinorova Sitora Muhammadi qizi.jpg"},
		{Name: "Xayrullayeva Feruza Faxrullayevna", File: "Xayrullayeva Feruza Faxrullayevna.JPG"},
		{Name: "Xo'janov Shohjahon Muzaffarovich", File: "Xo'janov Shohjahon Muzaffarovich.JPG"},
	}
}

// DefaultSeeds returns the curated roster in presentation order, grouped by
// category. Several names spell apostrophes differently from their inventory
// counterparts; those members fall back to the logo and their photos surface
// through the inventory sweep instead.
func DefaultSeeds() []Seed {
	return []Seed{
		// Founders
		{Name: "Madiyev Sardor Kenja oʻgʻli", Role: "Founder", Bio: "Sardor is one of the founding members of EcoFuture.", Category: "Founders"},
		{Name: "Farhodova Fozila Uygunovna", Role: "Founder", Bio: "Fozila is one of the founding members of EcoFuture.", Category: "Founders"},

		// Logistics Coordinators
		{Name: "Xo'janov Shohjahon Muzaffarovich", Role: "Logistics Coordinator", Bio: "Shohjahon coordinates logistics for our environmental projects.", Category: "Logistics Coordinators"},
		{Name: "Xayrullayeva Feruza Faxrullayevna", Role: "Logistics Coordinator", Bio: "Feruza manages logistics for our conservation initiatives.", Category: "Logistics Coordinators"},
		{Name: "Eshmoʻminova Mushtariy Otabek qizi", Role: "Logistics Coordinator", Bio: "Mushtariy handles logistics for our environmental programs.", Category: "Logistics Coordinators"},

		// Finance Managers
		{Name: "Sanjar", Role: "Finance Manager", Bio: "Sanjar manages the financial aspects of our organization.", Category: "Finance Managers"},
		{Name: "Asemay Asemova Maksudjanovna", Role: "Finance Manager", Bio: "Asemay oversees our financial planning and budgeting.", Category: "Finance Managers"},

		// Designers
		{Name: "Fayzullayev Ramziddin Demir oʻgʻli", Role: "Designer", Bio: "Ramziddin creates visual designs for our campaigns and materials.", Category: "Designers"},
		{Name: "Shohruh Tojiboyev Xoliyorovich", Role: "Designer", Bio: "Shohruh designs visual content for our environmental initiatives.", Category: "Designers"},
		{Name: "Numonov Samandar Olimjon o'g'li", Role: "Designer", Bio: "Samandar creates graphics and visual materials for our projects.", Category: "Designers"},
		{Name: "Usmon", Role: "Designer", Bio: "Usmon designs visual content for our environmental campaigns.", Category: "Designers"},
		{Name: "Firdavs Xudoyberdiyev Suxrob oʻgʻli", Role: "Designer", Bio: "Firdavs creates designs for our conservation awareness materials.", Category: "Designers"},
		{Name: "Gulboyev Muhammadali Sultonbek oʻgʻli", Role: "Designer", Bio: "Muhammadali designs visual content for our environmental initiatives.", Category: "Designers"},

		// Content Makers
		{Name: "Qahramon", Role: "Content Maker", Bio: "Qahramon creates content for our environmental awareness campaigns.", Category: "Content Makers"},
		{Name: "Rizvonbek Hamroqulov Firoʻz oʻgʻli", Role: "Content Maker", Bio: "Rizvonbek produces content for our conservation initiatives.", Category: "Content Makers"},
		{Name: "Roʻziyev Mirsaid Baxtiyor oʻgʻli", Role: "Content Maker", Bio: "Mirsaid creates content for our environmental programs.", Category: "Content Makers"},
		{Name: "Murotov Manuchekhr Sulaymonkulovich", Role: "Content Maker", Bio: "Manuchekhr produces content for our conservation awareness campaigns.", Category: "Content Makers"},
		{Name: "Charos Mamayusupova Barot qizi", Role: "Content Maker", Bio: "Charos creates content for our environmental initiatives.", Category: "Content Makers"},
		{Name: "Nurbek Salomov Choriyevich", Role: "Content Maker", Bio: "Nurbek produces content for our conservation programs.", Category: "Content Makers"},

		// Administration & Special Roles
		{Name: "Alibek Toshmuratov Abdisattor oʻgʻli", Role: "Admin", Bio: "Alibek manages administrative functions for our organization.", Category: "Administration & Special Roles"},
		{Name: "Bobur", Role: "Mobilograph", Bio: "Bobur handles mobile photography for our environmental projects.", Category: "Administration & Special Roles"},

		// Volunteers
		{Name: "Eshmamatov Asilbek Oybek oʻgʻli", Role: "Volunteer", Bio: "Asilbek volunteers for our environmental conservation initiatives.", Category: "Volunteers"},
		{Name: "Ashurov Javohir", Role: "Volunteer", Bio: "Javohir volunteers for our conservation programs.", Category: "Volunteers"},
		{Name: "Joʻrayev Dilnur Jasurovich", Role: "Volunteer", Bio: "Dilnur volunteers for our environmental initiatives.", Category: "Volunteers"},
		{Name: "Abdugʻafurova Asal Shuxratjonovna", Role: "Volunteer", Bio: "Asal volunteers for our conservation awareness campaigns.", Category: "Volunteers"},
		{Name: "Tojinorova Sitora Muhammadi qizi", Role: "Volunteer", Bio: "Sitora volunteers for our environmental programs.", Category: "Volunteers"},
		{Name: "Bobonazarova Binafsha Behzodovna", Role: "Volunteer", Bio: "Binafsha volunteers for our conservation initiatives.", Category: "Volunteers"},
		{Name: "Choriyev Said Akhtam Sanjar o'g'li", Role: "Volunteer", Bio: "Said volunteers for our environmental programs.", Category: "Volunteers"},
		{Name: "Barotova Shaxrizoda Yòldosh qizi", Role: "Head of Volunteers", Bio: "Shaxrizoda leads and coordinates our volunteer programs.", Category: "Volunteers"},
		{Name: "Boynazarova Shukrona Sheraliyevna", Role: "Volunteer", Bio: "Shukrona volunteers for our environmental conservation initiatives.", Category: "Volunteers"},
	}
}
