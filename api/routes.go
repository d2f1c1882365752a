package api

import "github.com/tedsuo/rata"

const (
	Estimate = "Estimate"
	Health   = "Health"
	Metrics  = "Metrics"
)

var Routes = rata.Routes{
	{Path: "/v1/estimate", Method: "POST", Name: Estimate},
	{Path: "/healthz", Method: "GET", Name: Health},
	{Path: "/metrics", Method: "GET", Name: Metrics},
}
