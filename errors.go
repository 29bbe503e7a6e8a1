package dynsql

import (
	"errors"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Re-export sentinel errors for public API.
var (
	ErrConfiguration       = types.ErrConfiguration
	ErrInvalidCondition    = types.ErrInvalidCondition
	ErrEmptyInCollection   = types.ErrEmptyInCollection
	ErrMissingColumnValues = types.ErrMissingColumnValues
	ErrAliasResolution     = types.ErrAliasResolution
	ErrUnsupportedFeature  = render.ErrUnsupportedFeature
	ErrDuplicateBindName   = render.ErrDuplicateBindName
)

// Typed errors carrying the failing entity.
type (
	ConfigurationError       = types.ConfigurationError
	InvalidConditionError    = types.InvalidConditionError
	EmptyInCollectionError   = types.EmptyInCollectionError
	MissingColumnValuesError = types.MissingColumnValuesError
	AliasResolutionError     = types.AliasResolutionError
	UnsupportedFeatureError  = render.UnsupportedFeatureError
)

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }

// IsInvalidCondition reports whether err is an invalid condition error.
func IsInvalidCondition(err error) bool { return errors.Is(err, ErrInvalidCondition) }

// IsEmptyInCollection reports whether err is an empty IN collection error.
func IsEmptyInCollection(err error) bool { return errors.Is(err, ErrEmptyInCollection) }

// IsMissingColumnValues reports whether err is a missing column values error.
func IsMissingColumnValues(err error) bool { return errors.Is(err, ErrMissingColumnValues) }

// IsAliasResolution reports whether err is an alias resolution error,
// raised when a column belongs to a table the statement never brings into scope.
func IsAliasResolution(err error) bool { return errors.Is(err, ErrAliasResolution) }

// IsUnsupportedFeature reports whether err was raised by a dialect refusing a feature.
func IsUnsupportedFeature(err error) bool { return errors.Is(err, ErrUnsupportedFeature) }
