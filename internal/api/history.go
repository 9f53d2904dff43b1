package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

type HistoryAPI struct {
	Router  fiber.Router
	History *usecase.History
}

func (api *HistoryAPI) Register() {
	api.Router.Get("/history", func(c *fiber.Ctx) error {
		refs, err := api.History.List()
		if err != nil {
			return applyError(c, err)
		}
		return applySuccess(c, refs)
	})

	api.Router.Get("/history/:id", func(c *fiber.Ctx) error {
		rec, err := api.History.Show(c.Params("id"))
		if err != nil {
			return applyError(c, err)
		}

		// ?q=<jsonpath> narrows the record down.
		if expr := c.Query("q"); expr != "" {
			out, err := api.History.Query(rec.ID, expr)
			if err != nil {
				return applyError(c, err)
			}
			return applySuccess(c, out)
		}
		return applySuccess(c, rec)
	})

	api.Router.Delete("/history/:id", func(c *fiber.Ctx) error {
		if err := api.History.Delete(c.Params("id")); err != nil {
			return applyError(c, err)
		}
		return applySuccess(c, nil)
	})
}
