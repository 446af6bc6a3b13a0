package grouping

import (
	"strings"

	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/deps"
	"github.com/ajxudir/depgroups/pkg/errors"
	"github.com/ajxudir/depgroups/pkg/verbose"
	"github.com/ajxudir/depgroups/pkg/warnings"
)

// misconfiguredGroupsHeader opens the warning about groups nothing matches.
const misconfiguredGroupsHeader = "Please check your configuration as there are groups no dependencies match:"

// misconfiguredGroupsFooter explains common causes for empty groups.
// The text is fixed; existing consumers match it verbatim (including the
// literal "mispelled").
const misconfiguredGroupsFooter = `This can happen if:
- the group's 'pattern' rules are mispelled
- your configuration's 'allow' rules do not permit any of the dependencies that match the group
- the dependencies that match the group rules have been removed from your project`

// Engine classifies a dependency set into configured groups.
//
// The engine is a single-pass, synchronous component: AssignToGroups is
// intended to be called exactly once per instance from a single logical
// flow. It holds no external resources and never mutates the dependency
// records it is given, only the containers that reference them.
type Engine struct {
	groups     []*Group
	ungrouped  []*deps.Dependency
	assigned   bool
	warnLogger warnings.Logger
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithWarnLogger sets the warning sink used to report misconfigured groups.
//
// By default the engine warns through the process-wide warnings writer.
// Tests and embedders can inject a capturing logger instead.
//
// Parameters:
//   - logger: Warning sink; ignored when nil
//
// Returns:
//   - Option: Engine construction option
func WithWarnLogger(logger warnings.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.warnLogger = logger
		}
	}
}

// NewEngine builds an engine from group configurations.
//
// One group is created per descriptor, preserving input order. Duplicate
// group names are a configuration defect and are rejected.
//
// Parameters:
//   - groupConfigs: Ordered group descriptors from configuration
//   - opts: Optional engine configuration
//
// Returns:
//   - *Engine: The constructed engine with empty dependency lists
//   - error: A ConfigurationError if two descriptors share a name
//
// Example:
//
//	engine, err := grouping.NewEngine(cfg.Groups)
func NewEngine(groupConfigs config.GroupList, opts ...Option) (*Engine, error) {
	engine := &Engine{
		groups:     make([]*Group, 0, len(groupConfigs)),
		warnLogger: warnings.Default(),
	}

	seen := make(map[string]struct{}, len(groupConfigs))
	for _, groupCfg := range groupConfigs {
		if _, exists := seen[groupCfg.Name]; exists {
			return nil, errors.NewConfigurationError("groups", "duplicate group name %q", groupCfg.Name)
		}
		seen[groupCfg.Name] = struct{}{}

		engine.groups = append(engine.groups, NewGroup(groupCfg.Name, groupCfg.Rules))
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

// Groups returns the engine's groups in declaration order.
//
// The returned slice is the engine's own backing list; callers must treat it
// as read-only.
//
// Returns:
//   - []*Group: Groups in declaration order
func (e *Engine) Groups() []*Group {
	return e.groups
}

// FindGroup looks up a group by exact name.
//
// Parameters:
//   - name: Group name to look up
//
// Returns:
//   - *Group: The group with that name, or nil if no such group exists
func (e *Engine) FindGroup(name string) *Group {
	for _, group := range e.groups {
		if group.Name == name {
			return group
		}
	}
	return nil
}

// Ungrouped returns the dependencies that matched no group, in input order.
//
// Returns:
//   - []*deps.Dependency: Ungrouped dependencies; nil before assignment
func (e *Engine) Ungrouped() []*deps.Dependency {
	return e.ungrouped
}

// Assigned reports whether the one-shot assignment pass has run.
//
// Returns:
//   - bool: true once AssignToGroups has completed successfully
func (e *Engine) Assigned() bool {
	return e.assigned
}

// AssignToGroups runs the one-shot assignment pass over a dependency set.
//
// It performs the following operations:
//   - Step 1: Rejects re-invocation with a ConfigurationError, leaving all
//     state untouched
//   - Step 2: Marks the engine assigned before any mutation becomes visible
//   - Step 3: With no configured groups, routes every dependency to the
//     ungrouped list and returns without warning
//   - Step 4: Otherwise iterates dependencies in input order and groups in
//     declaration order, appending each dependency to every group whose
//     rules it satisfies; a dependency matching no group is appended to the
//     ungrouped list
//   - Step 5: Emits a single warning naming the groups that received no
//     dependencies, if any
//
// A dependency may appear in several groups at once; records are shared by
// reference, never copied.
//
// Parameters:
//   - dependencies: The full dependency set in input order
//
// Returns:
//   - error: A ConfigurationError on re-invocation; nil otherwise
func (e *Engine) AssignToGroups(dependencies []*deps.Dependency) error {
	if e.assigned {
		return errors.NewConfigurationError("", "dependency groups have already been configured")
	}
	e.assigned = true

	if len(e.groups) == 0 {
		e.ungrouped = append(e.ungrouped, dependencies...)
		return nil
	}

	for _, dep := range dependencies {
		matched := false
		for _, group := range e.groups {
			if group.Contains(dep) {
				group.Add(dep)
				matched = true
				verbose.GroupMatched(dep.Name, group.Name)
			}
		}
		if !matched {
			e.ungrouped = append(e.ungrouped, dep)
			verbose.DependencyUngrouped(dep.Name)
		}
	}

	e.warnMisconfiguredGroups()
	return nil
}

// warnMisconfiguredGroups reports groups that received no dependencies.
//
// It scans groups in declaration order and emits exactly one warning listing
// the empty ones, one per bullet, followed by the fixed explanatory footer.
// Nothing is emitted when every group received at least one dependency.
func (e *Engine) warnMisconfiguredGroups() {
	var empty []string
	for _, group := range e.groups {
		if len(group.dependencies) == 0 {
			empty = append(empty, group.Name)
		}
	}
	if len(empty) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(misconfiguredGroupsHeader)
	sb.WriteString("\n")
	for _, name := range empty {
		sb.WriteString("- ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(misconfiguredGroupsFooter)
	sb.WriteString("\n")

	e.warnLogger.Warnf("%s", sb.String())
}
