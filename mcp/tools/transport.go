package tools

import (
	"fmt"
	"net/http"

	"github.com/mwiater/hkomcp/internal/adapter"
)

// mtrHeavyRail is the company code whose direction must be UT or DT.
const mtrHeavyRail = "mtr_hr"

func requiredString(name, desc string) adapter.Param {
	return adapter.Param{Name: name, Kind: adapter.KindString, Required: true, Description: desc}
}

// GetRoute looks up routes by route number on the transport ETA service.
func GetRoute() adapter.Descriptor {
	return adapter.Descriptor{
		Name:        "get-route",
		Description: "Get route detail with route number. Available transport: bus, minibus, mtr (use 'mtr_hr' as company), light rail. Returns a list of routes with company, route, routeType, dir, orig, dest, stopList, routeId and description; stopList is a list of stops with id, name, lat and long.",
		Base:        adapter.BaseTransport,
		Path:        "route",
		Params: []adapter.Param{
			requiredString("routeNo", "Route number, e.g. 1A, 960, TML"),
		},
		Format: adapter.JSONOnly,
	}
}

// GetEta fetches estimated arrival times at one stop.
func GetEta() adapter.Descriptor {
	return adapter.Descriptor{
		Name:        "get-eta",
		Description: "Get ETA (estimated time of arrival) at a stop; parameters can be retrieved from get-route. When company is mtr_hr, use dir UT when travelling from orig to dest and DT when travelling from dest to orig. Returns ETA in minutes and remarks.",
		Base:        adapter.BaseTransport,
		Path:        "eta",
		Method:      http.MethodPost,
		Params: []adapter.Param{
			requiredString("company", "Operator code as returned by get-route"),
			requiredString("routeId", "Route id as returned by get-route"),
			requiredString("stop", "Stop id from the route's stopList"),
			requiredString("routeType", "Route type as returned by get-route"),
			requiredString("dir", "Direction as returned by get-route (UT or DT for mtr_hr)"),
		},
		Format: adapter.JSONOnly,
		Check:  checkEtaDirection,
	}
}

func checkEtaDirection(p adapter.Params) *adapter.ValidationError {
	company, _ := p.String("company")
	if company != mtrHeavyRail {
		return nil
	}
	dir, _ := p.String("dir")
	if dir == "UT" || dir == "DT" {
		return nil
	}
	return &adapter.ValidationError{
		Field:   "dir",
		Message: fmt.Sprintf("unknown direction %q for %s", dir, mtrHeavyRail),
		Allowed: []string{"UT", "DT"},
	}
}
