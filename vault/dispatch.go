package vault

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	vaultstandard "github.com/margined-protocol/cw-vault-standard"
)

// ExtensionExecutor handles the execute messages of one capability module.
type ExtensionExecutor interface {
	// Name is the capability's variant name in the extension payload, e.g.
	// "lockup".
	Name() string
	Execute(ctx context.Context, info MsgInfo, payload json.RawMessage) error
}

// ExtensionQuerier handles the query messages of one capability module. The
// response shape is the capability's own; the base protocol passes it through
// as raw JSON.
type ExtensionQuerier interface {
	Name() string
	Query(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}

// Dispatcher routes raw vault standard messages to a Vault and to the
// registered extension handlers. The set of registered handlers is the Go
// analogue of compile-time capability flags: a payload naming a capability
// without a handler is rejected with ErrUnsupportedExtension.
type Dispatcher struct {
	vault      Vault
	executors  map[string]ExtensionExecutor
	queriers   map[string]ExtensionQuerier
	extensions []string
}

type Option func(*Dispatcher)

func WithExecutor(e ExtensionExecutor) Option {
	return func(d *Dispatcher) {
		d.executors[e.Name()] = e
		d.recordExtension(e.Name())
	}
}

func WithQuerier(q ExtensionQuerier) Option {
	return func(d *Dispatcher) {
		d.queriers[q.Name()] = q
		d.recordExtension(q.Name())
	}
}

func NewDispatcher(v Vault, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		vault:     v,
		executors: map[string]ExtensionExecutor{},
		queriers:  map[string]ExtensionQuerier{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) recordExtension(name string) {
	for _, existing := range d.extensions {
		if existing == name {
			return
		}
	}
	d.extensions = append(d.extensions, name)
}

// StandardInfo returns the VaultStandardInfo for this dispatcher
// configuration. Extension order equals registration order, so the result is
// stable for identical configuration. The caller should store the marshaled
// value under vaultstandard.VaultStandardInfoKey.
func (d *Dispatcher) StandardInfo() vaultstandard.VaultStandardInfo {
	extensions := make([]string, len(d.extensions))
	copy(extensions, d.extensions)
	return vaultstandard.VaultStandardInfo{
		Version:    vaultstandard.Version,
		Extensions: extensions,
	}
}

// Execute routes a raw ExecuteMsg. For Deposit it returns the minted vault
// tokens, for Redeem the returned assets, and for extension messages a zero
// amount. Any error rejects the whole call; no partial state mutation is
// permitted once an error condition is detected, so all checks run before the
// Vault is invoked.
func (d *Dispatcher) Execute(ctx context.Context, info MsgInfo, raw []byte) (math.Int, error) {
	msg, err := vaultstandard.UnmarshalExecuteMsg[json.RawMessage](raw)
	if err != nil {
		return math.Int{}, err
	}

	switch {
	case msg.Deposit != nil:
		return d.deposit(ctx, info, msg.Deposit)
	case msg.Redeem != nil:
		return d.redeem(ctx, info, msg.Redeem)
	case msg.VaultExtension != nil:
		name, payload, err := extensionVariant(*msg.VaultExtension)
		if err != nil {
			return math.Int{}, err
		}
		executor, ok := d.executors[name]
		if !ok {
			return math.Int{}, errorsmod.Wrap(vaultstandard.ErrUnsupportedExtension, name)
		}
		return math.ZeroInt(), executor.Execute(ctx, info, payload)
	default:
		return math.Int{}, errorsmod.Wrap(vaultstandard.ErrUnknownMessage, "execute")
	}
}

func (d *Dispatcher) deposit(ctx context.Context, info MsgInfo, msg *vaultstandard.Deposit) (math.Int, error) {
	if !msg.Amount.IsPositive() {
		return math.Int{}, errorsmod.Wrap(vaultstandard.ErrZeroAmount, "deposit")
	}

	vaultInfo, err := d.vault.Info(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if vaultInfo.BaseToken.IsNative() {
		denom, err := vaultInfo.BaseToken.ToNativeDenom()
		if err != nil {
			return math.Int{}, err
		}
		if !info.Funds.AmountOf(denom).Equal(msg.Amount) {
			return math.Int{}, errorsmod.Wrapf(vaultstandard.ErrFundsMismatch,
				"deposit amount %s, sent %s%s", msg.Amount, info.Funds.AmountOf(denom), denom)
		}
	}

	recipient := info.Sender
	if msg.Recipient != nil {
		recipient = *msg.Recipient
	}

	limit, err := d.vault.MaxDeposit(ctx, recipient)
	if err != nil {
		return math.Int{}, err
	}
	if limit != nil && msg.Amount.GT(*limit) {
		return math.Int{}, errorsmod.Wrapf(vaultstandard.ErrLimitExceeded,
			"deposit amount %s exceeds max deposit %s", msg.Amount, limit)
	}

	return d.vault.Deposit(ctx, info, msg.Amount, recipient)
}

func (d *Dispatcher) redeem(ctx context.Context, info MsgInfo, msg *vaultstandard.Redeem) (math.Int, error) {
	if !msg.Amount.IsPositive() {
		return math.Int{}, errorsmod.Wrap(vaultstandard.ErrZeroAmount, "redeem")
	}

	vaultInfo, err := d.vault.Info(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if vaultInfo.VaultToken.IsNative() {
		denom, err := vaultInfo.VaultToken.ToNativeDenom()
		if err != nil {
			return math.Int{}, err
		}
		// With the lockup extension the vault tokens were escrowed by a prior
		// Unlock call and no funds are attached. If funds are attached they
		// must match the amount field.
		attached := info.Funds.AmountOf(denom)
		if !attached.IsZero() && !attached.Equal(msg.Amount) {
			return math.Int{}, errorsmod.Wrapf(vaultstandard.ErrFundsMismatch,
				"redeem amount %s, sent %s%s", msg.Amount, attached, denom)
		}
	}

	limit, err := d.vault.MaxRedeem(ctx, info.Sender)
	if err != nil {
		return math.Int{}, err
	}
	if limit != nil && msg.Amount.GT(*limit) {
		return math.Int{}, errorsmod.Wrapf(vaultstandard.ErrLimitExceeded,
			"redeem amount %s exceeds max redeem %s", msg.Amount, limit)
	}

	recipient := info.Sender
	if msg.Recipient != nil {
		recipient = *msg.Recipient
	}

	return d.vault.Redeem(ctx, info, msg.Amount, recipient)
}

// Query routes a raw QueryMsg and returns the JSON-encoded response.
// Extension queries are passed through as raw JSON since the base protocol
// cannot declare their response shape.
func (d *Dispatcher) Query(ctx context.Context, raw []byte) (json.RawMessage, error) {
	msg, err := vaultstandard.UnmarshalQueryMsg[json.RawMessage](raw)
	if err != nil {
		return nil, err
	}

	switch {
	case msg.VaultStandardInfo != nil:
		info := d.StandardInfo()
		return json.Marshal(&info)
	case msg.Info != nil:
		info, err := d.vault.Info(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(&info)
	case msg.PreviewDeposit != nil:
		return marshalResult(d.vault.PreviewDeposit(ctx, msg.PreviewDeposit.Amount))
	case msg.PreviewRedeem != nil:
		return marshalResult(d.vault.PreviewRedeem(ctx, msg.PreviewRedeem.Amount))
	case msg.MaxDeposit != nil:
		return marshalResult(d.vault.MaxDeposit(ctx, msg.MaxDeposit.Recipient))
	case msg.MaxRedeem != nil:
		return marshalResult(d.vault.MaxRedeem(ctx, msg.MaxRedeem.Owner))
	case msg.TotalAssets != nil:
		return marshalResult(d.vault.TotalAssets(ctx))
	case msg.TotalVaultTokenSupply != nil:
		return marshalResult(d.vault.TotalVaultTokenSupply(ctx))
	case msg.ConvertToShares != nil:
		return marshalResult(d.vault.ConvertToShares(ctx, msg.ConvertToShares.Amount))
	case msg.ConvertToAssets != nil:
		return marshalResult(d.vault.ConvertToAssets(ctx, msg.ConvertToAssets.Amount))
	case msg.VaultExtension != nil:
		name, payload, err := extensionVariant(*msg.VaultExtension)
		if err != nil {
			return nil, err
		}
		querier, ok := d.queriers[name]
		if !ok {
			return nil, errorsmod.Wrap(vaultstandard.ErrUnsupportedExtension, name)
		}
		return querier.Query(ctx, payload)
	default:
		return nil, errorsmod.Wrap(vaultstandard.ErrUnknownMessage, "query")
	}
}

func marshalResult[T any](result T, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	return json.Marshal(result)
}

// extensionVariant splits an extension payload into its capability name and
// inner message. Payloads are objects with exactly one key, the capability's
// variant name.
func extensionVariant(payload json.RawMessage) (string, json.RawMessage, error) {
	var variants map[string]json.RawMessage
	if err := json.Unmarshal(payload, &variants); err != nil {
		return "", nil, err
	}
	if len(variants) != 1 {
		return "", nil, errorsmod.Wrapf(vaultstandard.ErrUnsupportedExtension,
			"extension payload must contain exactly one variant, got %d", len(variants))
	}
	for name, inner := range variants {
		return name, inner, nil
	}
	return "", nil, nil
}
