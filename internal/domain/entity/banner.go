package entity

import "time"

const DateLayout = time.DateOnly

type Banner struct {
	ID int64 `json:"id"`
	Content
	Image     string     `json:"image"`
	Order     int        `json:"order"`
	IsActive  bool       `json:"isActive"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Content struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
	CTALink  string `json:"ctaLink"`
	BgColor  string `json:"bgColor"`
}
