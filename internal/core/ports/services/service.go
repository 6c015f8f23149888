// Package services defines the service facades consumed by the HTTP handlers
// and by other services. Implementations live in internal/core/services.
package services

import "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Movement     MovementSvcFacade
	Category     CategorySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Sync         SyncSvcFacade
	Reporting    ReportingSvcFacade
	StrongAuth   StrongAuthSvc
	Connectivity local.ConnectivityMonitor
	Drafts       local.DraftStore
}
