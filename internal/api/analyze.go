package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

// analyzeBody is the POST /analyze payload. Omitted generation settings fall
// back to the workspace defaults.
type analyzeBody struct {
	Kind   string        `json:"kind"`
	Value  string        `json:"value"`
	Length *int          `json:"length"`
	Count  *int          `json:"count"`
	Pad    *bool         `json:"pad"`
	Affix  *domain.Affix `json:"affix"`
	Seed   uint64        `json:"seed"`
	Save   *bool         `json:"save"`
}

type AnalyzeAPI struct {
	Router   fiber.Router
	Analyze  *usecase.Analyze
	Defaults domain.GenerateRequest
	// Save is used when the request does not say whether to save.
	Save bool
}

func (api *AnalyzeAPI) Register() {
	api.Router.Post("/analyze", func(c *fiber.Ctx) error {
		var body analyzeBody
		if err := c.BodyParser(&body); err != nil {
			return applyBadRequest(c, fmt.Sprintf("invalid request body: %v", err))
		}

		kind, err := domain.ParseInputKind(body.Kind)
		if err != nil {
			return applyBadRequest(c, err.Error())
		}

		req, err := api.request(kind, body)
		if err != nil {
			return applyBadRequest(c, err.Error())
		}

		res, err := api.Analyze.Execute(c.UserContext(), req)
		if err != nil {
			return applyError(c, err)
		}

		return applySuccess(c, fiber.Map{
			"analysis":  res.Analysis,
			"details":   res.Analysis.Details(),
			"record_id": res.RecordID,
		})
	})
}

func (api *AnalyzeAPI) request(kind domain.InputKind, body analyzeBody) (usecase.AnalyzeRequest, error) {
	gen := domain.GenerateOverride{
		Length: body.Length,
		Count:  body.Count,
		Pad:    body.Pad,
		Affix:  body.Affix,
	}.Apply(api.Defaults)

	if body.Affix != nil {
		pos, err := domain.ParseAffixPosition(string(body.Affix.Position))
		if err != nil {
			return usecase.AnalyzeRequest{}, err
		}
		gen.Affix.Position = pos
	}

	save := api.Save
	if body.Save != nil {
		save = *body.Save
	}

	return usecase.AnalyzeRequest{
		Input:    domain.Input{Kind: kind, Value: body.Value},
		Generate: gen,
		Seed:     body.Seed,
		Save:     save,
	}, nil
}
