package fiber

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nola-analytics/internal/catalog"
)

// ExplorerHandler exposes the dashboard controller to the presentational
// layer: create a session, adjust the selection, trigger analysis, read the
// view-model. All business logic stays in the controller.
type ExplorerHandler struct {
	sessions *SessionRegistry
	validate *validator.Validate
}

func NewExplorerHandler(sessions *SessionRegistry) *ExplorerHandler {
	return &ExplorerHandler{
		sessions: sessions,
		validate: validator.New(),
	}
}

// CreateSession opens a dashboard session and runs the mount sequence:
// risk list, KPI snapshot and initial analysis.
func (h *ExplorerHandler) CreateSession(c *fiber.Ctx) error {
	id, ctrl := h.sessions.Create()

	if err := ctrl.Init(c.UserContext()); err != nil {
		// Fetch failures are folded into the view-model states; an error
		// here means the mount itself was interrupted.
		h.sessions.Delete(id)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Detail: "falha ao inicializar a sessão",
		})
	}

	return c.Status(http.StatusCreated).JSON(SessionResponse{
		SessionID: id,
		View:      toViewResponse(ctrl.ViewModel()),
	})
}

// View returns the current read-only view-model.
func (h *ExplorerHandler) View(c *fiber.Ctx) error {
	ctrl, ok := h.sessions.Get(c.Params("id"))
	if !ok {
		return sessionNotFound(c)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(ctrl.ViewModel()))
}

// UpdateSelection applies metric/dimension/channel changes. It never
// triggers a fetch; analysis is a separate, explicit action.
func (h *ExplorerHandler) UpdateSelection(c *fiber.Ctx) error {
	ctrl, ok := h.sessions.Get(c.Params("id"))
	if !ok {
		return sessionNotFound(c)
	}

	var req SelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Detail: "corpo da requisição inválido",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Detail: "seleção inválida: " + err.Error(),
		})
	}

	if req.Metric != "" {
		ctrl.SetMetric(catalog.MetricKey(req.Metric))
	}
	if req.Dimension != "" {
		ctrl.SetDimension(catalog.DimensionKey(req.Dimension))
	}
	if req.Channel != "" {
		ctrl.SetChannel(catalog.Channel(req.Channel))
	}

	return c.Status(http.StatusOK).JSON(toViewResponse(ctrl.ViewModel()))
}

// Analyze runs the analysis for the configuration current at call time and
// returns the resulting view-model. When a newer analysis supersedes this
// one mid-flight, the returned view reflects the newer state.
func (h *ExplorerHandler) Analyze(c *fiber.Ctx) error {
	ctrl, ok := h.sessions.Get(c.Params("id"))
	if !ok {
		return sessionNotFound(c)
	}

	ctrl.Analyze(c.UserContext())

	return c.Status(http.StatusOK).JSON(toViewResponse(ctrl.ViewModel()))
}

// CloseSession drops the session.
func (h *ExplorerHandler) CloseSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.sessions.Get(id); !ok {
		return sessionNotFound(c)
	}
	h.sessions.Delete(id)
	return c.SendStatus(http.StatusNoContent)
}

func sessionNotFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(ErrorResponse{
		Detail: "sessão não encontrada",
	})
}
