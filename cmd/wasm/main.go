//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecdh"
	"github.com/smallyu/go-ecc/pkg/ecdsa"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"GenerateKey":  js.FuncOf(GenerateKey),
		"Sign":         js.FuncOf(Sign),
		"Verify":       js.FuncOf(Verify),
		"SharedSecret": js.FuncOf(SharedSecret),
	})

	<-c
}

func curveByName(name string) *curve.Curve {
	switch name {
	case "secp256k1":
		return curve.S256()
	case "secp256r1":
		return curve.P256()
	}
	return nil
}

// GenerateKey creates a key pair on the named curve.
// Arguments:
// 0: curve name ("secp256r1" or "secp256k1")
// Returns:
// JSON {priv, pubX, pubY} in hex, or an error string
func GenerateKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curveName)"
	}
	c := curveByName(args[0].String())
	if c == nil {
		return fmt.Sprintf("error: unknown curve %q", args[0].String())
	}

	kp, err := ecdsa.GenerateKeyPair(c)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	out, _ := json.Marshal(map[string]string{
		"priv": kp.Priv.Text(16),
		"pubX": kp.Pub.X().Text(16),
		"pubY": kp.Pub.Y().Text(16),
	})
	return string(out)
}

// Sign signs a hex-encoded message with a hex-encoded private scalar.
// Arguments:
// 0: curve name
// 1: private scalar (hex)
// 2: message (hex)
// Returns:
// JSON {r, s} in hex, or an error string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curveName, privHex, msgHex)"
	}
	c := curveByName(args[0].String())
	if c == nil {
		return fmt.Sprintf("error: unknown curve %q", args[0].String())
	}
	priv, ok := new(big.Int).SetString(args[1].String(), 16)
	if !ok {
		return "error: invalid private scalar hex"
	}
	msg, err := hex.DecodeString(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: invalid message hex: %v", err)
	}

	sig, err := ecdsa.Sign(priv, msg, c)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	out, _ := json.Marshal(map[string]string{
		"r": sig.R.Text(16),
		"s": sig.S.Text(16),
	})
	return string(out)
}

// Verify checks a signature.
// Arguments:
// 0: curve name
// 1: public point x (hex)
// 2: public point y (hex)
// 3: message (hex)
// 4: r (hex)
// 5: s (hex)
// Returns:
// bool, or an error string for malformed arguments
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 6 {
		return "error: expected 6 arguments (curveName, pubXHex, pubYHex, msgHex, rHex, sHex)"
	}
	c := curveByName(args[0].String())
	if c == nil {
		return fmt.Sprintf("error: unknown curve %q", args[0].String())
	}
	x, okX := new(big.Int).SetString(args[1].String(), 16)
	y, okY := new(big.Int).SetString(args[2].String(), 16)
	r, okR := new(big.Int).SetString(args[4].String(), 16)
	s, okS := new(big.Int).SetString(args[5].String(), 16)
	if !okX || !okY || !okR || !okS {
		return "error: invalid hex argument"
	}
	msg, err := hex.DecodeString(args[3].String())
	if err != nil {
		return fmt.Sprintf("error: invalid message hex: %v", err)
	}

	pub, err := curve.NewPoint(c, x, y)
	if err != nil {
		return false
	}
	return ecdsa.Verify(pub, msg, &ecdsa.Signature{R: r, S: s})
}

// SharedSecret runs ECDH between a local private scalar and a peer point.
// Arguments:
// 0: curve name
// 1: private scalar (hex)
// 2: peer public x (hex)
// 3: peer public y (hex)
// Returns:
// hex-encoded 32-byte secret, or an error string
func SharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curveName, privHex, pubXHex, pubYHex)"
	}
	c := curveByName(args[0].String())
	if c == nil {
		return fmt.Sprintf("error: unknown curve %q", args[0].String())
	}
	priv, okD := new(big.Int).SetString(args[1].String(), 16)
	x, okX := new(big.Int).SetString(args[2].String(), 16)
	y, okY := new(big.Int).SetString(args[3].String(), 16)
	if !okD || !okX || !okY {
		return "error: invalid hex argument"
	}

	peer, err := curve.NewPoint(c, x, y)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	secret, err := ecdh.SharedSecret(priv, peer)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return hex.EncodeToString(secret)
}
