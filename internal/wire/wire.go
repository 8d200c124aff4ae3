// Package wire implements the fixed-layout call encoding the execution
// framework uses for outgoing actions. Decoding is strict: any payload that
// does not match the expected layout byte for byte is rejected, never
// guessed at.
package wire

import (
	"encoding/hex"
	"errors"
	"math"
	"math/big"
	"strings"
)

const (
	// WordSize is the width of one encoded argument.
	WordSize = 32

	// SelectorSize is the width of the function selector prefix.
	SelectorSize = 4

	// AddressSize is the width of an account address.
	AddressSize = 20
)

// MaxWord is the largest value an encoded word can hold, 2^256 - 1.
var MaxWord = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

var (
	ErrShortPayload   = errors.New("payload is shorter than the encoded call layout")
	ErrInvalidOffset  = errors.New("payload offset or length is inconsistent with the payload size")
	ErrInvalidAddress = errors.New("address must be 0x followed by 40 hex characters")
	ErrAmountRange    = errors.New("amount is outside the unsigned 256-bit range")
)

// Address is an account address.
type Address [AddressSize]byte

// ParseAddress parses a 0x-prefixed, 40-hex-character address string.
func ParseAddress(s string) (Address, error) {
	var a Address

	if !strings.HasPrefix(s, "0x") {
		return a, ErrInvalidAddress
	}

	b, err := hex.DecodeString(s[2:])
	if err != nil || len(b) != AddressSize {
		return a, ErrInvalidAddress
	}

	copy(a[:], b)
	return a, nil
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// Selector is the 4-byte function selector prefixing an encoded call.
type Selector [SelectorSize]byte

// TransferSelector identifies transfer(address,uint256), the inner call the
// interceptor inspects and the call it emits for the savings top-up.
var TransferSelector = Selector{0xa9, 0x05, 0x9c, 0xbb}

// ExecuteCall is a decoded execute(address,uint256,bytes) outer call: a
// target contract, a native value, and the inner calldata.
type ExecuteCall struct {
	Selector Selector
	Target   Address
	Value    *big.Int
	Data     []byte
}

// TransferCall is a decoded transfer(address,uint256) call.
type TransferCall struct {
	Selector  Selector
	Recipient Address
	Amount    *big.Int
}

// DecodeExecuteCall decodes an outer execute call. The head is a selector
// plus three words (target, value, data offset); the data offset must point
// at a length word followed by exactly that many bytes, all inside the
// payload.
func DecodeExecuteCall(payload []byte) (ExecuteCall, error) {
	var call ExecuteCall

	if len(payload) < SelectorSize+3*WordSize {
		return call, ErrShortPayload
	}

	copy(call.Selector[:], payload[:SelectorSize])

	args := payload[SelectorSize:]
	copy(call.Target[:], args[WordSize-AddressSize:WordSize])
	call.Value = new(big.Int).SetBytes(args[WordSize : 2*WordSize])

	offset, err := wordIndex(args[2*WordSize : 3*WordSize])
	if err != nil {
		return call, err
	}

	if offset+WordSize > len(args) {
		return call, ErrInvalidOffset
	}

	length, err := wordIndex(args[offset : offset+WordSize])
	if err != nil {
		return call, err
	}

	dataStart := offset + WordSize
	if dataStart+length > len(args) {
		return call, ErrInvalidOffset
	}

	call.Data = append([]byte(nil), args[dataStart:dataStart+length]...)
	return call, nil
}

// DecodeTransferCall decodes an inner transfer call: a selector plus two
// words (recipient, amount).
func DecodeTransferCall(payload []byte) (TransferCall, error) {
	var call TransferCall

	if len(payload) < SelectorSize+2*WordSize {
		return call, ErrShortPayload
	}

	copy(call.Selector[:], payload[:SelectorSize])

	args := payload[SelectorSize:]
	copy(call.Recipient[:], args[WordSize-AddressSize:WordSize])
	call.Amount = new(big.Int).SetBytes(args[WordSize : 2*WordSize])

	return call, nil
}

// EncodeTransferCall encodes a transfer(address,uint256) call for the given
// recipient and amount.
func EncodeTransferCall(recipient Address, amount *big.Int) ([]byte, error) {
	if amount.Sign() < 0 || amount.Cmp(MaxWord) > 0 {
		return nil, ErrAmountRange
	}

	payload := make([]byte, SelectorSize+2*WordSize)
	copy(payload, TransferSelector[:])
	copy(payload[SelectorSize+WordSize-AddressSize:], recipient[:])
	amount.FillBytes(payload[SelectorSize+WordSize : SelectorSize+2*WordSize])

	return payload, nil
}

// EncodeExecuteCall encodes an outer execute call wrapping the given inner
// calldata. The data offset always points directly past the head.
func EncodeExecuteCall(selector Selector, target Address, value *big.Int, data []byte) ([]byte, error) {
	if value.Sign() < 0 || value.Cmp(MaxWord) > 0 {
		return nil, ErrAmountRange
	}

	payload := make([]byte, SelectorSize+4*WordSize+len(data))
	copy(payload, selector[:])

	args := payload[SelectorSize:]
	copy(args[WordSize-AddressSize:], target[:])
	value.FillBytes(args[WordSize : 2*WordSize])
	big.NewInt(3 * WordSize).FillBytes(args[2*WordSize : 3*WordSize])
	big.NewInt(int64(len(data))).FillBytes(args[3*WordSize : 4*WordSize])
	copy(args[4*WordSize:], data)

	return payload, nil
}

// wordIndex interprets a word as a payload-relative index. Words that do not
// fit a 31-bit integer cannot point inside any payload this process can
// hold and are rejected outright.
func wordIndex(word []byte) (int, error) {
	v := new(big.Int).SetBytes(word)
	if !v.IsInt64() || v.Int64() > math.MaxInt32 {
		return 0, ErrInvalidOffset
	}

	return int(v.Int64()), nil
}
