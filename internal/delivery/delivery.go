// Package delivery defines the contract shared by all inbound transports.
package delivery

import "context"

// Delivery is a serving surface (e.g. the HTTP server) started by the
// application entry point.
type Delivery interface {
	Serve(ctx context.Context) error
}
