package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

// FieldView is one catalogue entry as served by GET /api/fields.
type FieldView struct {
	Field domain.Field       `json:"field"`
	Label string             `json:"label"`
	Good  bool               `json:"good"`
	Pairs []domain.DigitPair `json:"pairs"`
	domain.FieldInfo
}

// FieldsView lists the catalogue with display metadata.
func FieldsView() []FieldView {
	out := make([]FieldView, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		out = append(out, FieldView{
			Field:     f,
			Label:     f.Label(),
			Good:      f.IsGood(),
			Pairs:     domain.Catalogue(f),
			FieldInfo: f.Info(),
		})
	}
	return out
}

type FieldsAPI struct {
	Router fiber.Router
}

func (api *FieldsAPI) Register() {
	api.Router.Get("/fields", func(c *fiber.Ctx) error {
		return applySuccess(c, FieldsView())
	})
}
