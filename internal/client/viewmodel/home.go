package viewmodel

import (
	"context"
	"sync"

	"github.com/stis-apps/titiktemu/internal/client/models"
	"github.com/stis-apps/titiktemu/internal/client/repositories"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// HomeViewModel drives the report list screen. It remembers the selected
// filter; changing any part of it re-triggers the fetch.
type HomeViewModel struct {
	*Core
	reports repositories.ReportRepository

	mu     sync.Mutex
	filter models.ReportFilter

	listState *Observable[resource.Resource[[]models.Report]]
}

func NewHomeViewModel(reports repositories.ReportRepository, log logging.Logger) *HomeViewModel {
	return &HomeViewModel{
		Core:      newCore(log),
		reports:   reports,
		listState: NewObservable(resource.Idle[[]models.Report]()),
	}
}

func (vm *HomeViewModel) ListState() *Observable[resource.Resource[[]models.Report]] {
	return vm.listState
}

// Filter returns the currently selected filter.
func (vm *HomeViewModel) Filter() models.ReportFilter {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.filter
}

// Load fetches the list with the current filter.
func (vm *HomeViewModel) Load() {
	vm.fetch(vm.Filter())
}

// SetFilter replaces the filter and re-fetches.
func (vm *HomeViewModel) SetFilter(filter models.ReportFilter) {
	vm.mu.Lock()
	vm.filter = filter
	vm.mu.Unlock()
	vm.fetch(filter)
}

// FilterByKind keeps the rest of the filter and switches the kind tab.
// An empty kind shows everything.
func (vm *HomeViewModel) FilterByKind(kind models.ReportKind) {
	vm.mu.Lock()
	vm.filter.Kind = kind
	filter := vm.filter
	vm.mu.Unlock()
	vm.fetch(filter)
}

// Search sets the free-text query and re-fetches.
func (vm *HomeViewModel) Search(query string) {
	vm.mu.Lock()
	vm.filter.Search = query
	filter := vm.filter
	vm.mu.Unlock()
	vm.fetch(filter)
}

func (vm *HomeViewModel) fetch(filter models.ReportFilter) {
	run(vm.Core, "list", vm.listState, func(ctx context.Context) (resource.Resource[[]models.Report], error) {
		return vm.reports.List(ctx, filter)
	})
}
