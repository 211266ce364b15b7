package scripts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	"github.com/velmoria/scriptstore/internal/service/catalogservice"
	"github.com/velmoria/scriptstore/internal/service/licenseservice"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
	"github.com/velmoria/scriptstore/pkg/utils"
)

type Service interface {
	ListScripts(ctx context.Context, limit, offset int) ([]domain.Script, int, error)
	GetScript(ctx context.Context, resourceName string) (*domain.Script, error)
	ListPackages(ctx context.Context) ([]domain.PointsPackage, error)
}

type DownloadService interface {
	AuthorizeDownload(ctx context.Context, userID int, resourceName, version string) (string, error)
}

type ScriptHandler struct {
	catalogService  Service
	downloadService DownloadService
}

func New(catalogService Service, downloadService DownloadService) *ScriptHandler {
	return &ScriptHandler{
		catalogService:  catalogService,
		downloadService: downloadService,
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

func scriptDTO(script *domain.Script) dto.ScriptResponseDTO {
	out := dto.ScriptResponseDTO{
		ID:           script.ID,
		Title:        script.Title,
		ResourceName: script.ResourceName,
		Description:  script.Description,
		PricePoints:  script.PricePoints,
		Status:       script.Status,
		Features:     script.Features,
		Requirements: script.Requirements,
		CreatedAt:    script.CreatedAt,
	}
	for _, v := range script.Versions {
		out.Versions = append(out.Versions, dto.ScriptVersionDTO{
			Version:   v.Version,
			Notes:     v.Notes,
			CreatedAt: v.CreatedAt,
		})
	}
	return out
}

// List godoc
//
//	@Summary		List scripts available for sale
//	@Tags			Catalog
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	dto.ScriptListResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/scripts [get]
func (h *ScriptHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	scripts, total, err := h.catalogService.ListScripts(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := dto.ScriptListResponseDTO{Scripts: []dto.ScriptResponseDTO{}, Total: total}
	for i := range scripts {
		resp.Scripts = append(resp.Scripts, scriptDTO(&scripts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get one script by its resource name
//	@Tags		Catalog
//	@Produce	json
//	@Param		resourceName	path		string	true	"Resource name"
//	@Success	200				{object}	dto.ScriptResponseDTO
//	@Failure	404				{object}	utils.Response	"Script not found"
//	@Router		/api/scripts/{resourceName} [get]
func (h *ScriptHandler) Get(w http.ResponseWriter, r *http.Request) {
	resourceName := chi.URLParam(r, "resourceName")
	script, err := h.catalogService.GetScript(r.Context(), resourceName)
	if err != nil {
		if errors.Is(err, catalogservice.ErrScriptNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Script not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, scriptDTO(script))
}

// Packages godoc
//
//	@Summary	List active point packages
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		dto.PointsPackageDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/points-packages [get]
func (h *ScriptHandler) Packages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalogService.ListPackages(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PointsPackageDTO, 0, len(packages))
	for _, p := range packages {
		resp = append(resp, dto.PointsPackageDTO{
			ID:          p.ID,
			Name:        p.Name,
			Amount:      p.Amount,
			Points:      p.Points,
			BonusPoints: p.BonusPoints,
			IsActive:    p.IsActive,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Download godoc
//
//	@Summary		Authorize a script download
//	@Description	Issues the download link for an owned script with a verified server binding
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			resourceName	path		string	true	"Resource name"
//	@Param			version			query		string	false	"Version, latest when omitted"
//	@Success		200				{object}	dto.DownloadResponseDTO
//	@Failure		400				{object}	utils.Response	"Script not purchased"
//	@Failure		403				{object}	utils.Response	"Server binding not verified"
//	@Failure		404				{object}	utils.Response	"Script or version not found"
//	@Router			/api/scripts/{resourceName}/download [get]
func (h *ScriptHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	resourceName := chi.URLParam(r, "resourceName")
	version := r.URL.Query().Get("version")

	url, err := h.downloadService.AuthorizeDownload(r.Context(), userID, resourceName, version)
	if err != nil {
		switch {
		case errors.Is(err, licenseservice.ErrScriptNotFound), errors.Is(err, licenseservice.ErrVersionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Not found")
		case errors.Is(err, licenseservice.ErrPurchaseRequired):
			utils.RespondWithError(w, http.StatusBadRequest, "Script not purchased")
		case errors.Is(err, licenseservice.ErrNotVerified), errors.Is(err, licenseservice.ErrBindingNotFound):
			utils.RespondWithError(w, http.StatusForbidden, "Server binding not verified")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DownloadResponseDTO{DownloadURL: url})
}
