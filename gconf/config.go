package gconf

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Package is the configuration key of the engine.
const Package = "quorum"

// DefaultMaxDeadlineWindow is used when the genesis does not set a window.
const DefaultMaxDeadlineWindow = 30 * 24 * time.Hour

// EngineConfig is the persisted engine configuration. It is encoded with
// the reflection based protobuf marshaler.
type EngineConfig struct {
	// Self is the engine address, 20 bytes.
	Self []byte `protobuf:"bytes,1,opt,name=self,proto3" json:"-"`
	// ChainID is the decimal chain identifier the engine was deployed on.
	ChainID string `protobuf:"bytes,2,opt,name=chain_id,json=chainId,proto3" json:"-"`
	// MaxDeadlineWindow in seconds.
	MaxDeadlineWindow int64 `protobuf:"varint,3,opt,name=max_deadline_window,json=maxDeadlineWindow,proto3" json:"-"`
}

var _ Configuration = (*EngineConfig)(nil)

func (m *EngineConfig) Reset()         { *m = EngineConfig{} }
func (m *EngineConfig) String() string { return proto.CompactTextString(m) }
func (*EngineConfig) ProtoMessage()    {}

// NewEngineConfig returns a configuration with the default deadline window.
func NewEngineConfig(self quorum.Address, chainID *big.Int) *EngineConfig {
	return &EngineConfig{
		Self:              self.Bytes(),
		ChainID:           chainID.String(),
		MaxDeadlineWindow: int64(DefaultMaxDeadlineWindow / time.Second),
	}
}

// Validate implements Configuration.
func (m *EngineConfig) Validate() error {
	if len(m.Self) != quorum.AddressLength {
		return errors.Wrapf(errors.ErrInput, "self: length %d", len(m.Self))
	}
	if err := m.SelfAddress().Validate(); err != nil {
		return errors.Wrap(err, "self")
	}
	id, ok := new(big.Int).SetString(m.ChainID, 10)
	if !ok || id.Sign() <= 0 {
		return errors.Wrapf(errors.ErrInput, "chain id %q", m.ChainID)
	}
	if m.MaxDeadlineWindow <= 0 {
		return errors.Wrap(errors.ErrInput, "max deadline window must be positive")
	}
	return nil
}

// SelfAddress returns the engine address.
func (m *EngineConfig) SelfAddress() quorum.Address {
	return quorum.BytesToAddress(m.Self)
}

// ChainIDInt returns the chain identifier. Call only on a valid configuration.
func (m *EngineConfig) ChainIDInt() *big.Int {
	id, _ := new(big.Int).SetString(m.ChainID, 10)
	return id
}

// Window returns the maximum deadline window.
func (m *EngineConfig) Window() time.Duration {
	return time.Duration(m.MaxDeadlineWindow) * time.Second
}

type engineConfigJSON struct {
	Self              quorum.Address `json:"self"`
	ChainID           string         `json:"chain_id"`
	MaxDeadlineWindow string         `json:"max_deadline_window,omitempty"`
}

// MarshalJSON uses a human friendly representation.
func (m *EngineConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(engineConfigJSON{
		Self:              m.SelfAddress(),
		ChainID:           m.ChainID,
		MaxDeadlineWindow: m.Window().String(),
	})
}

// UnmarshalJSON accepts the representation produced by MarshalJSON. A
// missing window falls back to DefaultMaxDeadlineWindow.
func (m *EngineConfig) UnmarshalJSON(raw []byte) error {
	var c engineConfigJSON
	if err := json.Unmarshal(raw, &c); err != nil {
		return err
	}
	window := DefaultMaxDeadlineWindow
	if c.MaxDeadlineWindow != "" {
		d, err := time.ParseDuration(c.MaxDeadlineWindow)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "max deadline window: %s", err)
		}
		window = d
	}
	*m = EngineConfig{
		Self:              c.Self.Bytes(),
		ChainID:           c.ChainID,
		MaxDeadlineWindow: int64(window / time.Second),
	}
	return nil
}

// LoadEngineConfig reads the engine configuration.
func LoadEngineConfig(db ReadStore) (*EngineConfig, error) {
	var c EngineConfig
	if err := Load(db, Package, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "stored configuration")
	}
	return &c, nil
}

// Initializer fulfils the Initializer interface to load the engine
// configuration from the genesis file.
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

// FromGenesis reads conf.quorum and saves it.
func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	return InitConfig(db, opts, Package, &EngineConfig{})
}
