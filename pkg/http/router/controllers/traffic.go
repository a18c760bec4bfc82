package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	helper "github.com/adhika-w/trafficx/pkg/http/router/routerhelper"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// maxUploadBytes caps the image size accepted by the detect endpoint.
const maxUploadBytes = 10 << 20

type trafficAPI struct {
	simulationService SimulationService
	routingService    RoutingService
	detectionService  DetectionService
	log               *zap.Logger
}

func New(simulationService SimulationService, routingService RoutingService,
	detectionService DetectionService, log *zap.Logger) *trafficAPI {
	return &trafficAPI{
		simulationService: simulationService,
		routingService:    routingService,
		detectionService:  detectionService,
		log:               log,
	}
}

func (api *trafficAPI) Routes(group *helper.RouteGroup) {
	group.GET("/intersection-types", api.intersectionTypes)
	group.GET("/vehicle-types", api.vehicleTypes)
	group.POST("/simulate", api.simulate)
	group.POST("/route", api.route)
	group.POST("/detect", api.detect)
}

func (api *trafficAPI) intersectionTypes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"types": api.simulationService.IntersectionTypes()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *trafficAPI) vehicleTypes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"types": api.simulationService.VehicleTypes()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *trafficAPI) simulate(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request simulationRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	plan, err := api.simulationService.Simulate(request.IntersectionType,
		request.toVehiclesPerRoad(), request.EmergencyRoads)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": plan}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *trafficAPI) route(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	path, cost, reachable := api.routingService.Route(request.toEdges(),
		request.Start, request.Destination, request.useTraffic())

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewRouteResponse(path, cost, reachable)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *trafficAPI) detect(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		api.BadRequestResponse(w, r, errors.New("request must be multipart form data with a file field"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("file field is required"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	dets, signal, stats, err := api.detectionService.Detect(r.Context(), image)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewDetectResponse(dets, signal, stats)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
