package usecase

import (
	"strings"
	"time"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/The-Gleb/banner_admin/internal/errors"
)

func normalizeContent(c entity.Content) entity.Content {
	c.Title = strings.TrimSpace(c.Title)
	c.Subtitle = strings.TrimSpace(c.Subtitle)
	c.CTA = strings.TrimSpace(c.CTA)
	c.CTALink = strings.TrimSpace(c.CTALink)
	c.BgColor = strings.TrimSpace(c.BgColor)
	return c
}

func checkBanner(c entity.Content, order int, start time.Time, end *time.Time) error {
	switch {
	case c.Title == "":
		return errors.NewDomainError(errors.ErrBadRequest, "title is required")
	case order < 0:
		return errors.NewDomainError(errors.ErrBadRequest, "order cannot be negative")
	case start.IsZero():
		return errors.NewDomainError(errors.ErrBadRequest, "start date is required")
	case end != nil && end.Before(start):
		return errors.NewDomainError(errors.ErrBadRequest, "end date is before start date")
	}
	return nil
}
