package repository

import "strconv"

func argPos(n int) string {
	return strconv.Itoa(n)
}
