package handler

import (
	"encoding/json"
	"net/http"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/dto"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BannerHandler struct {
	bannerService service.IBannerService
}

func NewBannerHandler(bannerService service.IBannerService) *BannerHandler {
	if bannerService == nil {
		panic("bannerService cannot be nil")
	}
	return &BannerHandler{
		bannerService: bannerService,
	}
}

// @Summary list active banners
// @Tags banner
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.BannerDTO} "success"
// @Router /banners [get]
func (h *BannerHandler) ListActiveBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerService.ListActiveBanners(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, convertBannersToDTO(banners), nil)
}

// @Summary list all banners
// @Tags admin-banner
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.BannerDTO} "success"
// @Router /admin/banners [get]
func (h *BannerHandler) ListAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerService.ListAllBanners(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, convertBannersToDTO(banners), nil)
}

// @Summary create banner
// @Tags admin-banner
// @Accept json
// @Produce json
// @Param banner body dto.UpsertBannerDTO true "banner"
// @Success 200 {object} api.Response{data=dto.BannerDTO} "success"
// @Router /admin/banners [post]
func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertBannerDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	created, err := h.bannerService.CreateBanner(r.Context(), convertUpsertDTOToBanner(&req))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertBannerToDTO(created), nil)
}

// @Summary update banner
// @Tags admin-banner
// @Accept json
// @Param id path string true "banner id"
// @Param banner body dto.UpsertBannerDTO true "banner"
// @Success 200 {object} api.Response "success"
// @Router /admin/banners/{id} [put]
func (h *BannerHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var req dto.UpsertBannerDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	banner := convertUpsertDTOToBanner(&req)
	banner.BannerID = id

	if err := h.bannerService.UpdateBanner(r.Context(), banner); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary delete banner
// @Tags admin-banner
// @Param id path string true "banner id"
// @Success 200 {object} api.Response "success"
// @Router /admin/banners/{id} [delete]
func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.bannerService.DeleteBanner(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

func convertBannerToDTO(banner *model.Banner) dto.BannerDTO {
	return dto.BannerDTO{
		BannerID:  banner.BannerID.String(),
		Title:     banner.Title,
		Subtitle:  banner.Subtitle,
		ImageURL:  banner.ImageURL,
		LinkURL:   banner.LinkURL,
		Active:    banner.Active,
		SortOrder: banner.SortOrder,
	}
}

func convertBannersToDTO(banners []model.Banner) []dto.BannerDTO {
	result := make([]dto.BannerDTO, 0, len(banners))
	for _, banner := range banners {
		result = append(result, convertBannerToDTO(&banner))
	}
	return result
}

func convertUpsertDTOToBanner(req *dto.UpsertBannerDTO) *model.Banner {
	return &model.Banner{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		Active:    req.Active,
		SortOrder: req.SortOrder,
	}
}
