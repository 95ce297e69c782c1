package domain

import "go.trai.ch/zerr"

var (
	// ErrIncludeFlag is returned when YASM_FLAGS carries an explicit -I flag.
	// Include directories must be declared on the unit instead.
	ErrIncludeFlag = zerr.New("explicit -I flags are not allowed in YASM_FLAGS, use ADDINCL to declare include directories")

	// ErrMissingPreInclude is returned when a bare -P flag is the last token of YASM_FLAGS.
	ErrMissingPreInclude = zerr.New("-P flag is missing its pre-include file name")

	// ErrResourceTooLarge is returned when a resource does not fit the 4-byte size symbol.
	ErrResourceTooLarge = zerr.New("resource is too large for a 32-bit size symbol")

	// ErrResourceReadFailed is returned when a resource file cannot be read.
	ErrResourceReadFailed = zerr.New("failed to read resource")

	// ErrGeneratedWriteFailed is returned when a generated source file cannot be written.
	ErrGeneratedWriteFailed = zerr.New("failed to write generated source")

	// ErrToolFailed is returned when an external tool exits unsuccessfully.
	ErrToolFailed = zerr.New("tool invocation failed")

	// ErrToolNotFound is returned when a tool identifier cannot be resolved to a binary.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrRuleNotFound is returned when a rule name is not registered.
	ErrRuleNotFound = zerr.New("rule not found")

	// ErrRuleAlreadyRegistered is returned when a rule name is registered twice.
	ErrRuleAlreadyRegistered = zerr.New("rule already registered")

	// ErrStepAlreadyExists is returned when attempting to add a step with a name that already exists.
	ErrStepAlreadyExists = zerr.New("step already exists")

	// ErrOutputConflict is returned when two steps declare the same output path.
	ErrOutputConflict = zerr.New("output declared by more than one step")

	// ErrMissingDependency is returned when a step references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the step dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrStepNotFound is returned when a requested step is not found in the graph.
	ErrStepNotFound = zerr.New("step not found")

	// ErrNoResources is returned when a build is requested but no resource matches.
	ErrNoResources = zerr.New("no resources to build")

	// ErrMissingUnitName is returned when a unit is declared without a name.
	ErrMissingUnitName = zerr.New("missing unit name")

	// ErrInvalidUnitName is returned when a unit name is invalid.
	ErrInvalidUnitName = zerr.New("unit name can only contain alphanumeric characters, hyphens and underscores")

	// ErrDuplicateUnitName is returned when multiple units share the same name.
	ErrDuplicateUnitName = zerr.New("duplicate unit name")

	// ErrInvalidRule is returned when a unit names a rule that is not registered.
	ErrInvalidRule = zerr.New("unit references an unknown rule")

	// ErrInvalidPattern is returned when a resource pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid resource pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrPlanFailed is returned when the build plan cannot be constructed.
	ErrPlanFailed = zerr.New("failed to plan build")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrStepExecutionFailed is returned when a step execution fails.
	ErrStepExecutionFailed = zerr.New("step execution failed")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrCleanFailed is returned when the build root or store cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean build artifacts")
)
