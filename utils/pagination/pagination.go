package pagination

import "github.com/muhammadheryan/marketplace/constant"

// Normalize applies the default page size and clamps out-of-range values.
func Normalize(page, perPage int) (int, int) {
	if page <= 0 {
		page = constant.DefaultPage
	}
	if perPage <= 0 {
		perPage = constant.DefaultPerPage
	}
	if perPage > constant.MaxPerPage {
		perPage = constant.MaxPerPage
	}
	return page, perPage
}

func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
