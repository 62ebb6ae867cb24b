// Command eccdemo signs a message with a freshly generated key on a named
// curve, verifies the signature, and runs an ECDH exchange between two
// generated parties.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecdh"
	"github.com/smallyu/go-ecc/pkg/ecdsa"
)

func main() {
	curveName := flag.String("curve", "secp256r1", "curve to use: secp256r1 or secp256k1")
	message := flag.String("msg", "hello elliptic curves", "message to sign")
	flag.Parse()

	var c *curve.Curve
	switch *curveName {
	case "secp256r1", "p256", "P-256":
		c = curve.P256()
	case "secp256k1", "k256":
		c = curve.S256()
	default:
		log.Fatalf("unknown curve %q", *curveName)
	}

	kp, err := ecdsa.GenerateKeyPair(c)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	fmt.Printf("curve: %s\n", c.Name())
	fmt.Printf("priv:  0x%064x\n", kp.Priv)
	fmt.Printf("pub.x: 0x%064x\n", kp.Pub.X())
	fmt.Printf("pub.y: 0x%064x\n", kp.Pub.Y())

	sig, err := ecdsa.Sign(kp.Priv, []byte(*message), c)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	fmt.Printf("r:     0x%064x\n", sig.R)
	fmt.Printf("s:     0x%064x\n", sig.S)
	fmt.Printf("valid: %v\n", ecdsa.Verify(kp.Pub, []byte(*message), sig))

	peer, err := ecdsa.GenerateKeyPair(c)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	s1, err := ecdh.SharedSecret(kp.Priv, peer.Pub)
	if err != nil {
		log.Fatalf("ecdh: %v", err)
	}
	s2, err := ecdh.SharedSecret(peer.Priv, kp.Pub)
	if err != nil {
		log.Fatalf("ecdh: %v", err)
	}
	fmt.Printf("ecdh agreement: %v\n", bytes.Equal(s1, s2))
	fmt.Printf("shared secret:  %s\n", hex.EncodeToString(s1))
}
