package catalog

import (
	"strings"

	"github.com/prepwyse/prepwyse/internal/client/models"
)

// DirectoryUser is one row of the admin user-management table.
type DirectoryUser struct {
	ID               string
	Name             string
	Email            string
	Role             models.Role
	SubscriptionTier models.SubscriptionTier
	CoinBalance      int
	Grade            models.Grade
	EducationBoard   string
	CreatedAt        string
	LastActive       string
}

// DirectoryPageSize matches the admin table's page length.
const DirectoryPageSize = 5

var directory = []DirectoryUser{
	{ID: "1", Name: "Aarav Sharma", Email: "aarav.sharma@gmail.com", Role: models.RoleStudent, SubscriptionTier: models.TierPro, CoinBalance: 245, Grade: models.Grade12, EducationBoard: "CBSE", CreatedAt: "2024-11-15", LastActive: "2024-12-24"},
	{ID: "2", Name: "Priya Patel", Email: "priya.patel@yahoo.com", Role: models.RoleStudent, SubscriptionTier: models.TierFree, CoinBalance: 32, Grade: models.Grade11, EducationBoard: "CBSE", CreatedAt: "2024-12-01", LastActive: "2024-12-23"},
	{ID: "3", Name: "Rohan Gupta", Email: "rohan.g@outlook.com", Role: models.RoleParent, SubscriptionTier: models.TierPro, CoinBalance: 500, Grade: models.Grade12, EducationBoard: "ICSE", CreatedAt: "2024-10-20", LastActive: "2024-12-24"},
	{ID: "4", Name: "Ananya Singh", Email: "ananya.singh@gmail.com", Role: models.RoleStudent, SubscriptionTier: models.TierFree, CoinBalance: 15, Grade: models.Grade11, EducationBoard: "CBSE", CreatedAt: "2024-12-18", LastActive: "2024-12-22"},
	{ID: "5", Name: "Vikram Reddy", Email: "vikram.r@gmail.com", Role: models.RoleStudent, SubscriptionTier: models.TierPro, CoinBalance: 180, Grade: models.Grade12, EducationBoard: "State", CreatedAt: "2024-11-28", LastActive: "2024-12-24"},
	{ID: "6", Name: "Kavya Nair", Email: "kavya.nair@hotmail.com", Role: models.RoleStudent, SubscriptionTier: models.TierFree, CoinBalance: 48, Grade: models.Grade11, EducationBoard: "CBSE", CreatedAt: "2024-12-10", LastActive: "2024-12-21"},
	{ID: "7", Name: "Arjun Mehta", Email: "arjun.mehta@gmail.com", Role: models.RoleAdmin, SubscriptionTier: models.TierPro, CoinBalance: 999, Grade: models.Grade12, EducationBoard: "CBSE", CreatedAt: "2024-09-01", LastActive: "2024-12-24"},
	{ID: "8", Name: "Sneha Kapoor", Email: "sneha.k@yahoo.com", Role: models.RoleStudent, SubscriptionTier: models.TierPro, CoinBalance: 320, Grade: models.Grade12, EducationBoard: "CBSE", CreatedAt: "2024-11-05", LastActive: "2024-12-20"},
	{ID: "9", Name: "Rahul Joshi", Email: "rahul.joshi@gmail.com", Role: models.RoleStudent, SubscriptionTier: models.TierFree, CoinBalance: 5, Grade: models.Grade11, EducationBoard: "ICSE", CreatedAt: "2024-12-20", LastActive: "2024-12-24"},
	{ID: "10", Name: "Meera Iyer", Email: "meera.iyer@outlook.com", Role: models.RoleStudent, SubscriptionTier: models.TierPro, CoinBalance: 150, Grade: models.Grade12, EducationBoard: "CBSE", CreatedAt: "2024-11-12", LastActive: "2024-12-19"},
}

// DirectoryPage is one page of search results plus paging bookkeeping.
type DirectoryPage struct {
	Users      []DirectoryUser
	Page       int
	TotalPages int
	Total      int
}

// SearchUsers filters the directory by a case-insensitive substring match on
// name or email and returns the requested page (1-based). A page beyond the
// end returns an empty user list with the bookkeeping intact.
func SearchUsers(query string, page int) DirectoryPage {
	q := strings.ToLower(query)
	matched := make([]DirectoryUser, 0, len(directory))
	for _, u := range directory {
		if q == "" ||
			strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			matched = append(matched, u)
		}
	}

	totalPages := (len(matched) + DirectoryPageSize - 1) / DirectoryPageSize
	if page < 1 {
		page = 1
	}

	start := (page - 1) * DirectoryPageSize
	end := start + DirectoryPageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return DirectoryPage{
		Users:      matched[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(matched),
	}
}
