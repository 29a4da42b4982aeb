package http

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/aretw0/starrating/pkg/domain"
)

//go:embed openapi.yaml
var openapiSpec []byte

// RenderWidgetParamsFormat defines parameters for RenderWidget.
type RenderWidgetParamsFormat string

const (
	RenderWidgetParamsFormatSvg  RenderWidgetParamsFormat = "svg"
	RenderWidgetParamsFormatText RenderWidgetParamsFormat = "text"
	RenderWidgetParamsFormatPng  RenderWidgetParamsFormat = "png"
)

// RenderWidgetParams defines parameters for RenderWidget.
type RenderWidgetParams struct {
	Format *RenderWidgetParamsFormat `form:"format,omitempty" json:"format,omitempty"`
	Scale  *float64                  `form:"scale,omitempty" json:"scale,omitempty"`
}

// SubscribeWidgetEventsParams defines parameters for SubscribeWidgetEvents.
type SubscribeWidgetEventsParams struct {
	Types *string `form:"types,omitempty" json:"types,omitempty"`
}

// CreateWidgetRequest defines model for CreateWidgetRequest.
type CreateWidgetRequest struct {
	Preset *string                 `json:"preset,omitempty"`
	Props  *map[string]interface{} `json:"props,omitempty"`
}

// PointerSample defines model for PointerSample.
type PointerSample struct {
	StarIndex int     `json:"star_index"`
	Fraction  float64 `json:"fraction"`
}

// Widget defines model for Widget.
type Widget struct {
	Id        string               `json:"id"`
	Config    domain.Config        `json:"config"`
	Committed float64              `json:"committed"`
	Preview   *float64             `json:"preview,omitempty"`
	Displayed float64              `json:"displayed"`
	Mode      domain.Mode          `json:"mode"`
	Fills     []float64            `json:"fills"`
	Changes   *domain.SnapshotDiff `json:"changes,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (GET /info)
	GetInfo(w http.ResponseWriter, r *http.Request)
	// (GET /presets)
	ListPresets(w http.ResponseWriter, r *http.Request)
	// (POST /widgets)
	CreateWidget(w http.ResponseWriter, r *http.Request)
	// (GET /widgets/{id})
	GetWidget(w http.ResponseWriter, r *http.Request, id string)
	// (DELETE /widgets/{id})
	DeleteWidget(w http.ResponseWriter, r *http.Request, id string)
	// (POST /widgets/{id}/pointer-move)
	PointerMove(w http.ResponseWriter, r *http.Request, id string)
	// (POST /widgets/{id}/pointer-leave)
	PointerLeave(w http.ResponseWriter, r *http.Request, id string)
	// (POST /widgets/{id}/click)
	Click(w http.ResponseWriter, r *http.Request, id string)
	// (GET /widgets/{id}/render)
	RenderWidget(w http.ResponseWriter, r *http.Request, id string, params RenderWidgetParams)
	// (GET /widgets/{id}/events)
	SubscribeWidgetEvents(w http.ResponseWriter, r *http.Request, id string, params SubscribeWidgetEventsParams)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) widgetID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return "", false
	}
	return id, true
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetHealth(w, r)
}

// GetInfo operation middleware
func (siw *ServerInterfaceWrapper) GetInfo(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetInfo(w, r)
}

// ListPresets operation middleware
func (siw *ServerInterfaceWrapper) ListPresets(w http.ResponseWriter, r *http.Request) {
	siw.Handler.ListPresets(w, r)
}

// CreateWidget operation middleware
func (siw *ServerInterfaceWrapper) CreateWidget(w http.ResponseWriter, r *http.Request) {
	siw.Handler.CreateWidget(w, r)
}

// GetWidget operation middleware
func (siw *ServerInterfaceWrapper) GetWidget(w http.ResponseWriter, r *http.Request) {
	if id, ok := siw.widgetID(w, r); ok {
		siw.Handler.GetWidget(w, r, id)
	}
}

// DeleteWidget operation middleware
func (siw *ServerInterfaceWrapper) DeleteWidget(w http.ResponseWriter, r *http.Request) {
	if id, ok := siw.widgetID(w, r); ok {
		siw.Handler.DeleteWidget(w, r, id)
	}
}

// PointerMove operation middleware
func (siw *ServerInterfaceWrapper) PointerMove(w http.ResponseWriter, r *http.Request) {
	if id, ok := siw.widgetID(w, r); ok {
		siw.Handler.PointerMove(w, r, id)
	}
}

// PointerLeave operation middleware
func (siw *ServerInterfaceWrapper) PointerLeave(w http.ResponseWriter, r *http.Request) {
	if id, ok := siw.widgetID(w, r); ok {
		siw.Handler.PointerLeave(w, r, id)
	}
}

// Click operation middleware
func (siw *ServerInterfaceWrapper) Click(w http.ResponseWriter, r *http.Request) {
	if id, ok := siw.widgetID(w, r); ok {
		siw.Handler.Click(w, r, id)
	}
}

// RenderWidget operation middleware
func (siw *ServerInterfaceWrapper) RenderWidget(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.widgetID(w, r)
	if !ok {
		return
	}

	var params RenderWidgetParams
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "format", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "scale", r.URL.Query(), &params.Scale); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "scale", Err: err})
		return
	}
	siw.Handler.RenderWidget(w, r, id, params)
}

// SubscribeWidgetEvents operation middleware
func (siw *ServerInterfaceWrapper) SubscribeWidgetEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.widgetID(w, r)
	if !ok {
		return
	}

	var params SubscribeWidgetEventsParams
	if err := runtime.BindQueryParameter("form", true, false, "types", r.URL.Query(), &params.Types); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "types", Err: err})
		return
	}
	siw.Handler.SubscribeWidgetEvents(w, r, id, params)
}

// InvalidParamFormatError is reported when a path or query parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
	}

	r.Get("/health", wrapper.GetHealth)
	r.Get("/info", wrapper.GetInfo)
	r.Get("/presets", wrapper.ListPresets)
	r.Post("/widgets", wrapper.CreateWidget)
	r.Get("/widgets/{id}", wrapper.GetWidget)
	r.Delete("/widgets/{id}", wrapper.DeleteWidget)
	r.Post("/widgets/{id}/pointer-move", wrapper.PointerMove)
	r.Post("/widgets/{id}/pointer-leave", wrapper.PointerLeave)
	r.Post("/widgets/{id}/click", wrapper.Click)
	r.Get("/widgets/{id}/render", wrapper.RenderWidget)
	r.Get("/widgets/{id}/events", wrapper.SubscribeWidgetEvents)

	return r
}

// rawSpec returns the embedded OpenAPI document.
func rawSpec() ([]byte, error) {
	return openapiSpec, nil
}

// GetSwagger returns the parsed OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	data, err := rawSpec()
	if err != nil {
		return nil, err
	}
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
