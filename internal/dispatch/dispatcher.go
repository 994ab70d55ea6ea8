// Package dispatch fans a sync job out across companies and folds the
// per-company outcomes back into one invocation result.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/opsmith/opsync/internal/models"
)

// Spec declares one sync job: its name, how it schedules companies,
// and whether a company failure aborts the invocation. Policy lives
// here, not in per-job code paths.
type Spec struct {
	Name  string
	Short string

	// Parallel runs one task per company concurrently; otherwise
	// companies run one at a time.
	Parallel bool

	// ContinueOnError records company failures and keeps going; the
	// invocation fails only if every company failed. When false, the
	// first failure fails the invocation (started siblings are still
	// drained).
	ContinueOnError bool

	Run func(ctx context.Context, log *slog.Logger, company models.Company) error
}

// Result is the outcome of one (company, job) execution. Results are
// always collected, never dropped.
type Result struct {
	CompanyID   int
	CompanyName string
	Job         string
	Err         error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// CompanySource interface for loading tenants
type CompanySource interface {
	GetAll(ctx context.Context) ([]models.Company, error)
	GetByName(ctx context.Context, name string) (*models.Company, error)
}

type Dispatcher struct {
	companies CompanySource
	log       *slog.Logger
	jobs      map[string]Spec
	order     []string
}

func New(companies CompanySource, log *slog.Logger, specs []Spec) *Dispatcher {
	jobs := make(map[string]Spec, len(specs))
	order := make([]string, 0, len(specs))
	for _, spec := range specs {
		jobs[spec.Name] = spec
		order = append(order, spec.Name)
	}
	sort.Strings(order)
	return &Dispatcher{
		companies: companies,
		log:       log,
		jobs:      jobs,
		order:     order,
	}
}

// Jobs returns the declared job specs in name order.
func (d *Dispatcher) Jobs() []Spec {
	specs := make([]Spec, 0, len(d.order))
	for _, name := range d.order {
		specs = append(specs, d.jobs[name])
	}
	return specs
}

// Run executes the named job across companies. companyName narrows the
// run to a single company; empty means all.
func (d *Dispatcher) Run(ctx context.Context, jobName, companyName string) error {
	spec, ok := d.jobs[jobName]
	if !ok {
		return fmt.Errorf("unknown job %q", jobName)
	}

	companies, err := d.resolveCompanies(ctx, companyName)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		return fmt.Errorf("no companies to run %q against", jobName)
	}

	log := d.log.With("job", spec.Name, "run_id", uuid.New().String())
	log.Info("dispatching job", "companies", len(companies), "parallel", spec.Parallel)

	results := d.fanOut(ctx, log, spec, companies)
	return d.decide(log, spec, results)
}

func (d *Dispatcher) resolveCompanies(ctx context.Context, companyName string) ([]models.Company, error) {
	if companyName != "" {
		company, err := d.companies.GetByName(ctx, companyName)
		if err != nil {
			return nil, err
		}
		return []models.Company{*company}, nil
	}
	return d.companies.GetAll(ctx)
}

// fanOut starts one runner per company and waits for every started
// runner to finish. Parallel jobs start all companies at once; company
// counts are small and bounded so there is no queueing. Sequential
// abort-policy jobs stop starting new companies after a failure, but
// nothing already started is ever abandoned.
func (d *Dispatcher) fanOut(ctx context.Context, log *slog.Logger, spec Spec, companies []models.Company) []Result {
	if spec.Parallel {
		results := make([]Result, len(companies))
		var wg sync.WaitGroup
		for i, company := range companies {
			wg.Add(1)
			go func(i int, company models.Company) {
				defer wg.Done()
				results[i] = runOne(ctx, log, spec, company)
			}(i, company)
		}
		wg.Wait()
		return results
	}

	var results []Result
	for _, company := range companies {
		result := runOne(ctx, log, spec, company)
		results = append(results, result)
		if result.Failed() && !spec.ContinueOnError {
			break
		}
	}
	return results
}

// runOne is the unit of per-company work: it executes the job for one
// company and converts any failure, panics included, into a Result so
// sibling companies are never taken down with it.
func runOne(ctx context.Context, log *slog.Logger, spec Spec, company models.Company) (result Result) {
	result = Result{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Job:         spec.Name,
	}

	logger := log.With("company", company.Name, "company_id", company.ID)

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("panic in company sync: %v", r)
			logger.Error("company sync panicked", "panic", r)
		}
	}()

	logger.Info("company sync started")
	if err := spec.Run(ctx, logger, company); err != nil {
		result.Err = err
		return result
	}
	logger.Info("company sync finished")
	return result
}

// decide folds the collected results into the invocation outcome per
// the job's declared policy.
func (d *Dispatcher) decide(log *slog.Logger, spec Spec, results []Result) error {
	var failures []Result
	for _, result := range results {
		if result.Failed() {
			failures = append(failures, result)
		}
	}

	if len(failures) == 0 {
		log.Info("job succeeded", "companies", len(results))
		return nil
	}

	for _, failure := range failures {
		log.Error("company sync failed",
			"company", failure.CompanyName,
			"company_id", failure.CompanyID,
			"error", failure.Err)
	}

	if spec.ContinueOnError {
		if len(failures) < len(results) {
			log.Warn("job degraded", "companies", len(results), "failed", len(failures))
			return nil
		}
		var merr *multierror.Error
		for _, failure := range failures {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", failure.CompanyName, failure.Err))
		}
		return fmt.Errorf("job %q failed for all %d companies: %w", spec.Name, len(results), merr)
	}

	first := failures[0]
	return fmt.Errorf("job %q failed for company %q: %w", spec.Name, first.CompanyName, first.Err)
}
