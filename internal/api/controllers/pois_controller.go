package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gps/internal/models/request_models"
	"gps/internal/models/response_models"
	"gps/internal/services"
	"gps/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
	log        *zap.Logger
}

func NewPOIsController(poiService services.POIServiceInterface, log *zap.Logger) *POIsController {
	return &POIsController{
		poiService: poiService,
		log:        log,
	}
}

// InsertPoi godoc
// @Summary Insert a POI
// @Description Coordinates must be strictly positive and unused; names are unique.
// @Tags POIs
// @Accept json
// @Produce json
// @Param request body request_models.CreatePoiRequest true "POI payload"
// @Success 202 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /insert [post]
func (p *POIsController) InsertPoi(c *gin.Context) {
	var req request_models.CreatePoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: name, x and y are required")
		return
	}

	id, err := p.poiService.InsertPOI(c.Request.Context(), req.Name, *req.X, *req.Y)
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusAccepted,
		response_models.CreatedPOI{ID: id.String()},
		"POI inserted successfully")
}

// GetAllPois godoc
// @Summary List every POI
// @Tags POIs
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /get-all [get]
func (p *POIsController) GetAllPois(c *gin.Context) {
	pois, err := p.poiService.GetAllPOIs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

// SearchPois godoc
// @Summary List the POIs within dmax of (x, y)
// @Description Reads {x, y, dmax} from the JSON body, or from the query string when the body is empty.
// @Tags POIs
// @Accept json
// @Produce json
// @Param request body request_models.SearchPoiRequest false "Search payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /search [get]
func (p *POIsController) SearchPois(c *gin.Context) {
	var req request_models.SearchPoiRequest
	var err error
	if c.Request.ContentLength != 0 {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: x, y and dmax are required")
		return
	}

	pois, err := p.poiService.GetPOIsInRange(c.Request.Context(), *req.X, *req.Y, *req.DMax)
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs in range fetched successfully")
}
