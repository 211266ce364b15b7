package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	purchaserepo "github.com/velmoria/scriptstore/internal/repo/purchase-repo"
	"github.com/velmoria/scriptstore/internal/service/adminservice"
	"github.com/velmoria/scriptstore/internal/service/paymentservice"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
	"github.com/velmoria/scriptstore/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context, search string, limit, offset int) ([]domain.User, int, error)
	UpdateUser(ctx context.Context, actorRole string, userID int, role *string, points *int) (*domain.User, error)
	ListScripts(ctx context.Context, status string, limit, offset int) ([]domain.Script, int, error)
	GetScript(ctx context.Context, id int) (*domain.Script, error)
	CreateScript(ctx context.Context, script *domain.Script) (*domain.Script, error)
	UpdateScript(ctx context.Context, script *domain.Script) (*domain.Script, error)
	DeleteScript(ctx context.Context, id int) error
	ListPayments(ctx context.Context, status string, limit, offset int) ([]domain.Payment, int, error)
	ListPurchases(ctx context.Context, limit, offset int) ([]purchaserepo.PurchaseWithScript, int, error)
	ListPackages(ctx context.Context) ([]domain.PointsPackage, error)
	CreatePackage(ctx context.Context, pkg *domain.PointsPackage) (*domain.PointsPackage, error)
	UpdatePackage(ctx context.Context, pkg *domain.PointsPackage) error
	DeletePackage(ctx context.Context, id int) error
	Dashboard(ctx context.Context) (*adminservice.DashboardStats, error)
}

type PaymentReviewService interface {
	Approve(ctx context.Context, id int, adminNote, status string) error
	Reject(ctx context.Context, id int, adminNote string) error
}

type AdminHandler struct {
	adminService  Service
	paymentReview PaymentReviewService
}

func New(adminService Service, paymentReview PaymentReviewService) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		paymentReview: paymentReview,
	}
}

const defaultPageSize = 20

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func userDTO(u *domain.User) dto.AdminUserResponseDTO {
	return dto.AdminUserResponseDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Points:    u.Points,
		IsMember:  u.IsMember,
		CreatedAt: u.CreatedAt,
	}
}

func scriptDTO(s *domain.Script) dto.AdminScriptResponseDTO {
	out := dto.AdminScriptResponseDTO{
		ID:           s.ID,
		Title:        s.Title,
		ResourceName: s.ResourceName,
		Description:  s.Description,
		PricePoints:  s.PricePoints,
		Status:       s.Status,
		Features:     s.Features,
		Requirements: s.Requirements,
	}
	for _, v := range s.Versions {
		out.Versions = append(out.Versions, dto.AdminScriptVersionDTO{
			Version:     v.Version,
			DownloadURL: v.DownloadURL,
			Notes:       v.Notes,
			CreatedAt:   v.CreatedAt,
		})
	}
	return out
}

func scriptFromRequest(req *dto.ScriptRequestDTO) *domain.Script {
	script := &domain.Script{
		Title:        req.Title,
		ResourceName: req.ResourceName,
		Description:  req.Description,
		PricePoints:  req.PricePoints,
		Status:       req.Status,
		Features:     req.Features,
		Requirements: req.Requirements,
	}
	for _, v := range req.Versions {
		script.Versions = append(script.Versions, domain.ScriptVersion{
			Version:     v.Version,
			DownloadURL: v.DownloadURL,
			Notes:       v.Notes,
		})
	}
	return script
}

func paymentDTO(p *domain.Payment) dto.AdminPaymentResponseDTO {
	return dto.AdminPaymentResponseDTO{
		ID:            p.ID,
		UserID:        p.UserID,
		Amount:        p.Amount,
		Points:        p.Points,
		Method:        p.Method,
		ProofImage:    p.ProofImage,
		ReferenceCode: p.ReferenceCode,
		Status:        p.Status,
		AdminNote:     p.AdminNote,
		CreatedAt:     p.CreatedAt,
		ProcessedAt:   p.ProcessedAt,
	}
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		search	query		string	false	"Name or email filter"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{object}	dto.AdminUserListResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	users, total, err := h.adminService.ListUsers(r.Context(), r.URL.Query().Get("search"), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := dto.AdminUserListResponseDTO{Users: []dto.AdminUserResponseDTO{}, Total: total}
	for i := range users {
		resp.Users = append(resp.Users, userDTO(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateUser godoc
//
//	@Summary		Change a user's role or point balance
//	@Description	Role changes touching SUPER_ADMIN require a SUPER_ADMIN caller
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.AdminUserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid role"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actorRole, _ := r.Context().Value(pkgauth.RoleKey).(string)
	id, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.adminService.UpdateUser(r.Context(), actorRole, id, req.Role, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, adminservice.ErrInvalidRole):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
		case errors.Is(err, adminservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userDTO(user))
}

// ListScripts godoc
//
//	@Summary	List scripts in any status
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"Status filter"	Enums(DRAFT, ACTIVE, INACTIVE)
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{array}		dto.AdminScriptResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/scripts [get]
func (h *AdminHandler) ListScripts(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	scripts, _, err := h.adminService.ListScripts(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.AdminScriptResponseDTO, 0, len(scripts))
	for i := range scripts {
		resp = append(resp, scriptDTO(&scripts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetScript godoc
//
//	@Summary	Get one script with its versions
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Script ID"
//	@Success	200	{object}	dto.AdminScriptResponseDTO
//	@Failure	404	{object}	utils.Response	"Script not found"
//	@Router		/api/admin/scripts/{id} [get]
func (h *AdminHandler) GetScript(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid script ID")
		return
	}
	script, err := h.adminService.GetScript(r.Context(), id)
	if err != nil {
		if errors.Is(err, adminservice.ErrScriptNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Script not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, scriptDTO(script))
}

// CreateScript godoc
//
//	@Summary	Create a script
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ScriptRequestDTO	true	"Script body"
//	@Success	201		{object}	dto.AdminScriptResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/admin/scripts [post]
func (h *AdminHandler) CreateScript(w http.ResponseWriter, r *http.Request) {
	var req dto.ScriptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ResourceName == "" || req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	script, err := h.adminService.CreateScript(r.Context(), scriptFromRequest(&req))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, scriptDTO(script))
}

// UpdateScript godoc
//
//	@Summary		Update a script
//	@Description	Replaces the script fields and its version set
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Script ID"
//	@Param			request	body		dto.ScriptRequestDTO	true	"Script body"
//	@Success		200		{object}	dto.AdminScriptResponseDTO
//	@Failure		404		{object}	utils.Response	"Script not found"
//	@Router			/api/admin/scripts/{id} [put]
func (h *AdminHandler) UpdateScript(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid script ID")
		return
	}
	var req dto.ScriptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	script := scriptFromRequest(&req)
	script.ID = id
	updated, err := h.adminService.UpdateScript(r.Context(), script)
	if err != nil {
		if errors.Is(err, adminservice.ErrScriptNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Script not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, scriptDTO(updated))
}

// DeleteScript godoc
//
//	@Summary	Delete a script
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Script ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Script not found"
//	@Router		/api/admin/scripts/{id} [delete]
func (h *AdminHandler) DeleteScript(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid script ID")
		return
	}
	if err := h.adminService.DeleteScript(r.Context(), id); err != nil {
		if errors.Is(err, adminservice.ErrScriptNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Script not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// ListPayments godoc
//
//	@Summary	List deposits for review
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"Status filter"	Enums(PENDING, APPROVED, COMPLETED, REJECTED)
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{array}		dto.AdminPaymentResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/payments [get]
func (h *AdminHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	payments, _, err := h.adminService.ListPayments(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.AdminPaymentResponseDTO, 0, len(payments))
	for i := range payments {
		resp = append(resp, paymentDTO(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ApprovePayment godoc
//
//	@Summary		Approve a pending deposit
//	@Description	Credits the user's points once; a second approval attempt is rejected
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Payment ID"
//	@Param			request	body		dto.ReviewPaymentRequestDTO	false	"Review note"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		409		{object}	utils.Response	"Payment already processed"
//	@Router			/api/admin/payments/{id}/approve [post]
func (h *AdminHandler) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	h.reviewPayment(w, r, h.paymentReview.Approve)
}

// RejectPayment godoc
//
//	@Summary	Reject a pending deposit
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Payment ID"
//	@Param		request	body		dto.ReviewPaymentRequestDTO	false	"Review note"
//	@Success	200		{object}	utils.Response
//	@Failure	404		{object}	utils.Response	"Payment not found"
//	@Failure	409		{object}	utils.Response	"Payment already processed"
//	@Router		/api/admin/payments/{id}/reject [post]
func (h *AdminHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	h.reviewPayment(w, r, func(ctx context.Context, id int, note, _ string) error {
		return h.paymentReview.Reject(ctx, id, note)
	})
}

func (h *AdminHandler) reviewPayment(w http.ResponseWriter, r *http.Request, review func(ctx context.Context, id int, note, status string) error) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}
	var req dto.ReviewPaymentRequestDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	err = review(r.Context(), id, req.Note, paymentservice.StatusApproved)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPaymentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
		case errors.Is(err, paymentservice.ErrPaymentAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, "Payment already processed")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Processed"})
}

// ListPurchases godoc
//
//	@Summary	List all purchases
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Page size"
//	@Param		offset	query		int	false	"Page offset"
//	@Success	200		{array}		dto.AdminPurchaseResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/purchases [get]
func (h *AdminHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	purchases, _, err := h.adminService.ListPurchases(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.AdminPurchaseResponseDTO, 0, len(purchases))
	for _, p := range purchases {
		resp = append(resp, dto.AdminPurchaseResponseDTO{
			ID:           p.ID,
			UserID:       p.UserID,
			ResourceName: p.ResourceName,
			Title:        p.ScriptTitle,
			PricePaid:    p.PricePaid,
			Status:       p.Status,
			CreatedAt:    p.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListPackages godoc
//
//	@Summary	List all point packages
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.PointsPackageDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/points-packages [get]
func (h *AdminHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.adminService.ListPackages(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PointsPackageDTO, 0, len(packages))
	for _, p := range packages {
		resp = append(resp, packageDTO(&p))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func packageDTO(p *domain.PointsPackage) dto.PointsPackageDTO {
	return dto.PointsPackageDTO{
		ID:          p.ID,
		Name:        p.Name,
		Amount:      p.Amount,
		Points:      p.Points,
		BonusPoints: p.BonusPoints,
		IsActive:    p.IsActive,
	}
}

func packageFromRequest(req *dto.PointsPackageRequestDTO) *domain.PointsPackage {
	return &domain.PointsPackage{
		Name:        req.Name,
		Amount:      req.Amount,
		Points:      req.Points,
		BonusPoints: req.BonusPoints,
		IsActive:    req.IsActive,
	}
}

// CreatePackage godoc
//
//	@Summary	Create a point package
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.PointsPackageRequestDTO	true	"Package body"
//	@Success	201		{object}	dto.PointsPackageDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/admin/points-packages [post]
func (h *AdminHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req dto.PointsPackageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Points <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	pkg, err := h.adminService.CreatePackage(r.Context(), packageFromRequest(&req))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, packageDTO(pkg))
}

// UpdatePackage godoc
//
//	@Summary	Update a point package
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Package ID"
//	@Param		request	body		dto.PointsPackageRequestDTO	true	"Package body"
//	@Success	200		{object}	dto.PointsPackageDTO
//	@Failure	404		{object}	utils.Response	"Package not found"
//	@Router		/api/admin/points-packages/{id} [put]
func (h *AdminHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid package ID")
		return
	}
	var req dto.PointsPackageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	pkg := packageFromRequest(&req)
	pkg.ID = id
	if err := h.adminService.UpdatePackage(r.Context(), pkg); err != nil {
		if errors.Is(err, adminservice.ErrPackageNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Package not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, packageDTO(pkg))
}

// DeletePackage godoc
//
//	@Summary	Delete a point package
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Package ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Package not found"
//	@Router		/api/admin/points-packages/{id} [delete]
func (h *AdminHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid package ID")
		return
	}
	if err := h.adminService.DeletePackage(r.Context(), id); err != nil {
		if errors.Is(err, adminservice.ErrPackageNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Package not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// Dashboard godoc
//
//	@Summary	Aggregate store statistics
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.DashboardResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		Users:          stats.Users,
		Purchases:      stats.Purchases,
		Scripts:        stats.Scripts,
		ApprovedAmount: stats.ApprovedAmount,
	})
}
