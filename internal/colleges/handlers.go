package colleges

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/CampusStream/CS-Backend/internal/db"
	"github.com/CampusStream/CS-Backend/internal/httpx"
	"github.com/google/uuid"
)

type collegeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type collegeResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ListHandler returns every college in insertion order. The directory is
// public, no session required.
func ListHandler(w http.ResponseWriter, r *http.Request) {
	var all []College
	if err := db.DB.Order("created_at, id").Find(&all).Error; err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}

	out := make([]collegeResponse, 0, len(all))
	for _, c := range all {
		out = append(out, collegeResponse{Name: c.Name, Address: c.Address})
	}
	httpx.SuccessList(w, out, len(out))
}

// CreateHandler adds a college. Creation is currently open to anonymous
// callers, preserving the behavior of the service this replaces; pending
// product confirmation before any auth gate is added.
func CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req collegeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, httpx.ValidationMsg("Invalid request format"))
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Address) == "" {
		fields["address"] = "Address is required"
	}
	if len(fields) > 0 {
		httpx.WriteError(w, httpx.Validation(fields))
		return
	}

	college := College{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Address: req.Address,
	}
	if err := db.DB.Create(&college).Error; err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}

	httpx.SuccessMsg(w, http.StatusCreated, "College created successfully",
		collegeResponse{Name: college.Name, Address: college.Address})
}
