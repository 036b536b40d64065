// Package mocks provides gomock implementations of the gateway and store ports.
//
// The mocks are generated by go:generate directives in internal/core. To
// regenerate them after a port changes, run:
//
//	go generate ./internal/core
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	gw := mocks.NewMockCenterGateway(ctrl)
//	gw.EXPECT().ListCenters(gomock.Any(), gomock.Any()).Return(page, nil)
package mocks
