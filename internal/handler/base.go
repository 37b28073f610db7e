package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/music-catalog/internal/middleware"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/deppfellow/music-catalog/internal/sqlerr"
	"github.com/deppfellow/music-catalog/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is embedded by every resource handler to share the server container.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Envelope wraps every successful payload: {"data": ...}.
type Envelope struct {
	Data any `json:"data"`
}

// Request is the pointer-to-struct constraint for request payloads. Each
// request gets a fresh value so concurrent requests never share state.
type Request[Req any] interface {
	*Req
	validation.Validatable
}

// ResponseHandler writes the result of a successful handler call.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler renders the result inside the data envelope.
type JSONResponseHandler struct{}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(http.StatusOK, Envelope{Data: result})
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(*newrelic.Transaction, any) {}

// EmptyResponseHandler answers {"data": {}} for operations without a payload.
type EmptyResponseHandler struct{}

func (h EmptyResponseHandler) Handle(c echo.Context, _ any) error {
	return c.JSON(http.StatusOK, Envelope{Data: struct{}{}})
}

func (h EmptyResponseHandler) GetOperation() string {
	return "handler_empty"
}

func (h EmptyResponseHandler) AddAttributes(*newrelic.Transaction, any) {}

// handleRequest runs validation, the handler and the response writer,
// logging and tracing each step. Errors are classified here so every
// endpoint answers with its own fallback message on unexpected failures.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	fallback string,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", c.Request().Method).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return sqlerr.HandleError(err, fallback)
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)
		httpErr := sqlerr.HandleError(err, fallback)

		event := logger.Warn()
		if httpErr.Status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Err(err).
			Int("status", httpErr.Status).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}

		return httpErr
	}

	totalDuration := time.Since(start)
	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle adapts a typed handler into an echo.HandlerFunc that answers
// {"data": <result>}. fallback is the 500 message used when the error
// cannot be classified ("Couldn't create album").
func Handle[Req any, PReq Request[Req], Res any](
	handler func(c echo.Context, req PReq) (Res, error),
	fallback string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, PReq(new(Req)), fallback, func(c echo.Context, req PReq) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{})
	}
}

// HandleEmpty is Handle for operations that answer {"data": {}}.
func HandleEmpty[Req any, PReq Request[Req]](
	handler func(c echo.Context, req PReq) error,
	fallback string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, PReq(new(Req)), fallback, func(c echo.Context, req PReq) (any, error) {
			return nil, handler(c, req)
		}, EmptyResponseHandler{})
	}
}
