// Package catalog holds the static product data consumed by the dashboard
// views: the Commerce syllabus, gamification content, the admin user
// directory, and the coin purchase table. Everything here is in-memory;
// nothing is persisted.
package catalog

import (
	"strings"

	"github.com/prepwyse/prepwyse/internal/client/models"
)

// Subject is one syllabus subject with its topic list.
type Subject struct {
	Name   string
	Topics []string
}

var subjectsByGrade = map[models.Grade][]Subject{
	models.Grade11: {
		{
			Name: "Accountancy",
			Topics: []string{
				"Introduction to Accounting",
				"Theory Base of Accounting",
				"Recording of Transactions - Journal",
				"Ledger and Trial Balance",
				"Bank Reconciliation Statement",
				"Depreciation, Provisions and Reserves",
				"Bills of Exchange",
				"Financial Statements",
				"Accounts from Incomplete Records",
			},
		},
		{
			Name: "Business Studies",
			Topics: []string{
				"Nature and Purpose of Business",
				"Forms of Business Organisation",
				"Private, Public and Global Enterprises",
				"Business Services",
				"Emerging Modes of Business",
				"Social Responsibility of Business and Business Ethics",
				"Sources of Business Finance",
				"Small Business and Entrepreneurship",
				"Internal Trade",
				"International Business",
			},
		},
		{
			Name: "Economics",
			Topics: []string{
				"Introduction to Microeconomics",
				"Consumer's Equilibrium and Demand",
				"Producer Behaviour and Supply",
				"Forms of Market and Price Determination",
			},
		},
		{
			Name: "Mathematics",
			Topics: []string{
				"Sets and Functions",
				"Complex Numbers and Quadratic Equations",
				"Linear Inequalities",
				"Permutations and Combinations",
				"Binomial Theorem",
				"Sequence and Series",
				"Straight Lines",
				"Conic Sections",
				"Limits and Derivatives",
				"Statistics",
				"Probability",
			},
		},
	},
	models.Grade12: {
		{
			Name: "Accountancy",
			Topics: []string{
				"Accounting for Not-for-Profit Organisation",
				"Accounting for Partnership: Basic Concepts",
				"Reconstitution of a Partnership Firm - Admission",
				"Reconstitution of a Partnership Firm - Retirement/Death",
				"Dissolution of Partnership Firm",
				"Accounting for Share Capital",
				"Issue and Redemption of Debentures",
				"Analysis of Financial Statements",
				"Accounting Ratios",
				"Cash Flow Statement",
			},
		},
		{
			Name: "Business Studies",
			Topics: []string{
				"Nature and Significance of Management",
				"Principles of Management",
				"Business Environment",
				"Planning",
				"Organising",
				"Staffing",
				"Directing",
				"Controlling",
				"Financial Management",
				"Financial Markets",
				"Marketing Management",
				"Consumer Protection",
			},
		},
		{
			Name: "Economics",
			Topics: []string{
				"National Income and Related Aggregates",
				"Money and Banking",
				"Determination of Income and Employment",
				"Government Budget and the Economy",
				"Balance of Payments",
			},
		},
		{
			Name: "Mathematics",
			Topics: []string{
				"Relations and Functions",
				"Inverse Trigonometric Functions",
				"Matrices",
				"Determinants",
				"Continuity and Differentiability",
				"Application of Derivatives",
				"Integrals",
				"Application of Integrals",
				"Differential Equations",
				"Vector Algebra",
				"Three Dimensional Geometry",
				"Linear Programming",
			},
		},
	},
}

// SubjectsForGrade returns the syllabus for the given grade, or nil for an
// unknown grade.
func SubjectsForGrade(grade models.Grade) []Subject {
	return subjectsByGrade[grade]
}

// FindSubject locates a subject by name (case-insensitive) within a grade.
func FindSubject(grade models.Grade, name string) (Subject, bool) {
	for _, s := range subjectsByGrade[grade] {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Subject{}, false
}

// FilterTopics returns the topics of a subject whose name contains query
// (case-insensitive). An empty query returns every topic.
func FilterTopics(grade models.Grade, subject, query string) []string {
	s, ok := FindSubject(grade, subject)
	if !ok {
		return nil
	}
	if query == "" {
		return append([]string(nil), s.Topics...)
	}

	q := strings.ToLower(query)
	matched := make([]string, 0, len(s.Topics))
	for _, topic := range s.Topics {
		if strings.Contains(strings.ToLower(topic), q) {
			matched = append(matched, topic)
		}
	}
	return matched
}
