package employeehandler

import (
	"net/http"
	"strings"

	"hris/internal/domain/employee"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID   string `json:"employeeId"`
		DocumentName string `json:"documentName"`
		DocumentType string `json:"documentType"`
		FileURL      string `json:"fileUrl"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("documentName", payload.DocumentName, "is required")
	v.Required("documentType", payload.DocumentType, "is required")
	v.Required("fileUrl", payload.FileURL, "is required")
	v.URL("fileUrl", payload.FileURL)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	doc, err := h.Service.CreateDocument(r.Context(), employee.CreateDocumentInput{
		EmployeeID:   payload.EmployeeID,
		DocumentName: payload.DocumentName,
		DocumentType: payload.DocumentType,
		FileURL:      strings.TrimSpace(payload.FileURL),
	})
	if err != nil {
		shared.FailError(w, r, err, "document_create_failed", "failed to create employee document")
		return
	}
	api.Created(w, doc, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId"))
	v := shared.NewValidator()
	v.Required("employeeId", employeeID, "query parameter is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	docs, err := h.Service.ListDocuments(r.Context(), employeeID)
	if err != nil {
		shared.FailError(w, r, err, "document_list_failed", "failed to list employee documents")
		return
	}
	api.Success(w, docs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteDocument(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "document_delete_failed", "failed to delete employee document")
		return
	}
	shared.Deleted(w, r, deleted)
}
