package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/models"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/service"
	appErrors "github.com/davidmichaelmontiza/Campus-Information-System/pkg/errors"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/export"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/response"
)

// Operation names a resource endpoint for error translation.
type Operation string

const (
	OpCreate Operation = "create"
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
	OpExport Operation = "export"
)

// StatusPolicy decides the HTTP status of store failures.
type StatusPolicy string

const (
	// PolicyLegacy answers 400 for failed writes and 500 for failed reads and deletes.
	PolicyLegacy StatusPolicy = "legacy"
	// PolicyCoarse answers 500 for every store failure.
	PolicyCoarse StatusPolicy = "coarse"
)

// Translate applies the policy to err raised by op. Validation and
// not-found errors keep their own status.
func (p StatusPolicy) Translate(op Operation, err error) *appErrors.Error {
	appErr := appErrors.FromError(err)
	if !errors.Is(appErr, appErrors.ErrPersistence) {
		return appErr
	}
	if p != PolicyCoarse && (op == OpCreate || op == OpUpdate) {
		return appErrors.WithStatus(appErr, http.StatusBadRequest)
	}
	return appErrors.WithStatus(appErr, http.StatusInternalServerError)
}

// ResourceService is the behaviour a ResourceHandler needs from its service.
type ResourceService[T any, PT models.Record[T]] interface {
	Resource() service.Resource
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (PT, error)
	Create(ctx context.Context, body []byte) (PT, error)
	Update(ctx context.Context, id string, body []byte) (PT, error)
	Delete(ctx context.Context, id string) (PT, error)
}

// ResourceHandler serves the CRUD and export endpoints of one entity.
type ResourceHandler[T any, PT models.Record[T]] struct {
	service ResourceService[T, PT]
	policy  StatusPolicy
}

// NewResourceHandler constructs a resource handler.
func NewResourceHandler[T any, PT models.Record[T]](svc ResourceService[T, PT], policy StatusPolicy) *ResourceHandler[T, PT] {
	if policy == "" {
		policy = PolicyLegacy
	}
	return &ResourceHandler[T, PT]{service: svc, policy: policy}
}

// Resource returns the entity metadata used for routing.
func (h *ResourceHandler[T, PT]) Resource() service.Resource {
	return h.service.Resource()
}

// Create validates the body and stores a new record.
func (h *ResourceHandler[T, PT]) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.fail(c, OpCreate, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unable to read request body"))
		return
	}
	record, err := h.service.Create(c.Request.Context(), body)
	if err != nil {
		h.fail(c, OpCreate, err)
		return
	}
	response.Created(c, record)
}

// List returns every record.
func (h *ResourceHandler[T, PT]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, OpList, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get returns one record by its store id.
func (h *ResourceHandler[T, PT]) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, OpGet, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Update replaces one record with the validated body.
func (h *ResourceHandler[T, PT]) Update(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.fail(c, OpUpdate, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unable to read request body"))
		return
	}
	record, err := h.service.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		h.fail(c, OpUpdate, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Delete removes one record and confirms with the entity's deleted message.
func (h *ResourceHandler[T, PT]) Delete(c *gin.Context) {
	if _, err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, OpDelete, err)
		return
	}
	response.Message(c, http.StatusOK, h.service.Resource().DeletedMessage)
}

// Export renders every record as CSV (default) or PDF.
func (h *ResourceHandler[T, PT]) Export(c *gin.Context) {
	renderer, ok := export.ForFormat(c.Query("format"))
	if !ok {
		h.fail(c, OpExport, appErrors.Clone(appErrors.ErrUnsupported, "format must be csv or pdf"))
		return
	}

	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, OpExport, err)
		return
	}
	data, err := export.Tabulate(items)
	if err != nil {
		h.fail(c, OpExport, err)
		return
	}

	resource := h.service.Resource()
	payload, err := renderer.Render(data, resource.Entity)
	if err != nil {
		h.fail(c, OpExport, err)
		return
	}
	response.Binary(c, renderer.ContentType(), resource.Name+"."+renderer.Extension(), payload)
}

func (h *ResourceHandler[T, PT]) fail(c *gin.Context, op Operation, err error) {
	_ = c.Error(err)
	response.Error(c, h.policy.Translate(op, err))
}
