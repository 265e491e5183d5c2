package testconfig

import (
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/env"
)

// MaxPartial is a hand-written partial for a count in which merging keeps the
// larger value rather than the later one.
type MaxPartial struct {
	Value *uint32 `json:"value,omitempty" toml:"value,omitempty" yaml:"value,omitempty"`
}

// Default starts the count at one.
func (MaxPartial) Default() MaxPartial {
	return MaxPartial{Value: config.Ptr[uint32](1)}
}

// FromEnv reads WORKERS. A malformed value invalidates the partial as a whole.
func (MaxPartial) FromEnv(provider env.Provider) (MaxPartial, error) {
	value, err := env.FetchAndParse(provider, "WORKERS", env.Parse[uint32])
	if err != nil {
		return MaxPartial{}, config.Self(err)
	}

	return MaxPartial{Value: value}, nil
}

func (p MaxPartial) Merge(other MaxPartial) MaxPartial {
	if p.Value != nil && other.Value != nil {
		return MaxPartial{Value: config.Ptr(max(*p.Value, *other.Value))}
	}

	return MaxPartial{Value: config.Override(p.Value, other.Value)}
}

func (p MaxPartial) Resolve() (uint32, error) {
	if p.Value == nil {
		return 0, config.Self(config.ErrMissingField)
	}

	return *p.Value, nil
}
