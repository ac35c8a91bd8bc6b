// Package validator checks a dataset tree for problems the API does not catch at serve time:
// files that do not decode, dangling contract code references and duplicate keys.
package validator

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/alleslabs/aldus-api/internal/dataset"
	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/pkg/models"
)

// Severity grades an issue. Only errors fail validation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding.
type Issue struct {
	Severity Severity
	Scope    string
	Dataset  string
	Message  string
}

// Report is the outcome of a validation run. Issues are sorted by scope, dataset and message.
type Report struct {
	Scopes []dataset.Scope
	Issues []Issue
}

// Failed reports whether any issue is an error.
func (r *Report) Failed() bool {
	return slices.ContainsFunc(r.Issues, func(i Issue) bool { return i.Severity == SeverityError })
}

// Validator walks a dataset tree through the same loader the API uses.
type Validator struct {
	loader      *dataset.Loader
	log         *logger.Logger
	concurrency int
}

// New creates a validator. concurrency bounds how many chain/network directories are checked
// at once; zero or less means one per CPU.
func New(loader *dataset.Loader, concurrency int, log *logger.Logger) *Validator {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Validator{
		loader:      loader,
		log:         log,
		concurrency: concurrency,
	}
}

// Run validates the global datasets and every chain/network directory under the data root.
func (v *Validator) Run(ctx context.Context) (*Report, error) {
	scopes, err := v.discoverScopes()
	if err != nil {
		return nil, err
	}

	v.log.Infow("validating dataset tree", "root", v.loader.Resolver().Root(), "scopes", len(scopes))

	report := &Report{Scopes: scopes}
	report.Issues = append(report.Issues, v.checkGlobals(ctx)...)

	results := make([][]Issue, len(scopes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, scope := range scopes {
		g.Go(func() error {
			issues, err := v.checkScope(gctx, scope)
			if err != nil {
				return err
			}
			results[i] = issues
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, issues := range results {
		report.Issues = append(report.Issues, issues...)
	}

	slices.SortStableFunc(report.Issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.Scope, b.Scope),
			cmp.Compare(a.Dataset, b.Dataset),
			cmp.Compare(a.Message, b.Message),
		)
	})

	return report, nil
}

// discoverScopes lists {chain}/{network} directories, sorted.
func (v *Validator) discoverScopes() ([]dataset.Scope, error) {
	root := v.loader.Resolver().Root()

	chains, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read data root: %w", err)
	}

	var scopes []dataset.Scope
	for _, chain := range chains {
		if !chain.IsDir() {
			continue
		}

		networks, err := os.ReadDir(filepath.Join(root, chain.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read chain %s: %w", chain.Name(), err)
		}
		for _, network := range networks {
			if network.IsDir() {
				scopes = append(scopes, dataset.Scope{Chain: chain.Name(), Network: network.Name()})
			}
		}
	}

	return scopes, nil
}

func (v *Validator) checkGlobals(ctx context.Context) []Issue {
	var issues []Issue
	global := func(kind dataset.Kind, err error) {
		if err != nil {
			issues = append(issues, loadIssue("", kind, err))
		}
	}

	_, err := v.loader.Assets(ctx)
	global(dataset.Assets, err)

	_, err = v.loader.Chains(ctx)
	global(dataset.Chains, err)

	entities, err := v.loader.Entities(ctx)
	global(dataset.Entities, err)

	for _, slug := range duplicates(entities, func(e models.RawEntity) string { return e.Slug }) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Dataset:  dataset.Entities.String(),
			Message:  fmt.Sprintf("duplicate entity slug %q", slug),
		})
	}

	return issues
}

func (v *Validator) checkScope(ctx context.Context, scope dataset.Scope) ([]Issue, error) {
	var issues []Issue
	name := scope.Chain + "/" + scope.Network

	add := func(kind dataset.Kind, severity Severity, format string, args ...any) {
		issues = append(issues, Issue{
			Severity: severity,
			Scope:    name,
			Dataset:  kind.String(),
			Message:  fmt.Sprintf(format, args...),
		})
	}
	loaded := func(kind dataset.Kind, err error) error {
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		issues = append(issues, loadIssue(name, kind, err))
		return nil
	}

	accounts, err := v.loader.Accounts(ctx, scope)
	if err := loaded(dataset.Accounts, err); err != nil {
		return nil, err
	}
	for _, addr := range duplicates(accounts, func(a models.Account) string { return a.Address }) {
		add(dataset.Accounts, SeverityError, "duplicate account address %q", addr)
	}

	codes, err := v.loader.Codes(ctx, scope)
	if err := loaded(dataset.Codes, err); err != nil {
		return nil, err
	}
	for _, id := range duplicates(codes, func(c models.Code) int64 { return c.ID }) {
		add(dataset.Codes, SeverityError, "duplicate code id %d", id)
	}

	contracts, err := v.loader.Contracts(ctx, scope)
	if err := loaded(dataset.Contracts, err); err != nil {
		return nil, err
	}
	for _, addr := range duplicates(contracts, func(c models.Contract) string { return c.Address }) {
		add(dataset.Contracts, SeverityError, "duplicate contract address %q", addr)
	}

	ids := make(map[int64]struct{}, len(codes))
	for _, c := range codes {
		ids[c.ID] = struct{}{}
	}
	for _, c := range contracts {
		if _, ok := ids[c.Code]; !ok {
			add(dataset.Contracts, SeverityError, "contract %q references unknown code %d", c.Address, c.Code)
		}
	}

	if scope.Chain == v.loader.Resolver().ModuleChain() {
		modules, err := v.loader.Modules(ctx, scope)
		if err := loaded(dataset.Modules, err); err != nil {
			return nil, err
		}
		key := func(m models.Module) string { return m.Address + "::" + m.Name }
		for _, k := range duplicates(modules, key) {
			add(dataset.Modules, SeverityError, "duplicate module %s", k)
		}
	} else if v.hasFile(dataset.Modules, scope) {
		add(dataset.Modules, SeverityWarning, "modules file is never served outside chain %q", v.loader.Resolver().ModuleChain())
	}

	return issues, nil
}

// hasFile reports whether kind's file exists for scope as if scope were on the module chain.
func (v *Validator) hasFile(kind dataset.Kind, scope dataset.Scope) bool {
	r := dataset.NewResolver(v.loader.Resolver().Root(), scope.Chain)
	loc, err := r.Resolve(kind, scope)
	if err != nil || loc.Empty {
		return false
	}
	_, err = os.Stat(loc.Path)
	return err == nil
}

func loadIssue(scope string, kind dataset.Kind, err error) Issue {
	msg := err.Error()
	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		msg = fmt.Sprintf("%s: %v", loadErr.Reason, loadErr.Err)
	}
	return Issue{
		Severity: SeverityError,
		Scope:    scope,
		Dataset:  kind.String(),
		Message:  msg,
	}
}

// duplicates returns the keys that occur more than once, in first-seen order.
func duplicates[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(map[K]int, len(items))
	var out []K
	for _, item := range items {
		k := key(item)
		seen[k]++
		if seen[k] == 2 {
			out = append(out, k)
		}
	}
	return out
}
