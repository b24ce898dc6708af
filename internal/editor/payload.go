package editor

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
)

// File is a newly selected image.
type File struct {
	Name    string
	Content io.Reader
}

type Field struct {
	Name  string
	Value string
}

// Payload is the multipart body of an update request. Fields keep the order
// they were added in.
type Payload struct {
	Fields []Field
	Image  *File
}

func (p *Payload) add(name, value string) {
	p.Fields = append(p.Fields, Field{Name: name, Value: value})
}

func (p *Payload) Get(name string) (string, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// BuildPayload serializes validated values. A new image wins over the
// retention marker; with neither, no image reference is sent and the backend
// clears the stored image.
func BuildPayload(v Values, image *File, currentImage string) *Payload {
	p := &Payload{}

	p.add("title", v.Title)
	if v.Subtitle != "" {
		p.add("subtitle", v.Subtitle)
	}
	p.add("cta", entity.EffectiveCTA(v.CTA))
	p.add("ctaLink", entity.EffectiveCTALink(v.CTALink))
	p.add("bgColor", entity.EffectiveBgColor(v.BgColor))
	p.add("order", strconv.Itoa(v.Order))
	p.add("isActive", strconv.FormatBool(v.IsActive))
	p.add("startDate", v.StartDate)
	if v.EndDate != "" {
		p.add("endDate", v.EndDate)
	}

	switch {
	case image != nil:
		p.Image = image
	case currentImage != "":
		p.add("currentImage", currentImage)
	}

	return p
}

// Encode writes the payload as multipart/form-data. The caller closes w.
func (p *Payload) Encode(w *multipart.Writer) error {
	for _, f := range p.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	if p.Image == nil {
		return nil
	}

	part, err := w.CreateFormFile("image", p.Image.Name)
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := io.Copy(part, p.Image.Content); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	return nil
}
