// Command espdemo wires a loopback SA pair and round-trips a single
// sample IPv4 packet through the encrypt and decrypt pipelines, logging
// each stage. It has no IKE, no socket I/O, and no persisted state — it
// exists only as a runnable smoke test a developer can point at real
// primitives while wiring this engine into a larger IPsec stack.
package main

import (
	"github.com/go-i2p/go-esp/lib/esp"
	"github.com/go-i2p/go-esp/lib/espconfig"
	"github.com/go-i2p/go-esp/lib/espcrypto"
	"github.com/go-i2p/go-esp/lib/ipwire"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

func main() {
	key := make([]byte, 32)
	macKey := make([]byte, 32)
	rng := espcrypto.NewCSPRNG()
	if err := rng.Fill(key); err != nil {
		log.WithError(err).Fatal("failed to generate demo AES key")
	}
	if err := rng.Fill(macKey); err != nil {
		log.WithError(err).Fatal("failed to generate demo MAC key")
	}

	encryptor, err := espcrypto.NewAESCBCEncryptor(key)
	if err != nil {
		log.WithError(err).Fatal("failed to build AES-CBC encryptor")
	}
	mac, err := espcrypto.NewHMACSHA256(macKey, 16)
	if err != nil {
		log.WithError(err).Fatal("failed to build HMAC-SHA-256 MAC")
	}

	cfg := espconfig.DefaultEngineConfig
	cfg.Suite = "AES-CBC-256/HMAC-SHA-256-128"

	const spi = 0xC0FFEE01
	encSA := esp.NewSA(spi, encryptor, mac, rng, cfg)
	decSA := esp.NewSA(spi, encryptor, mac, rng, cfg)

	payload := make([]byte, 20)
	payload[0] = 0x45 // IPv4, header length 5 words
	inner, err := ipwire.New(payload)
	if err != nil {
		log.WithError(err).Fatal("failed to build demo inner packet")
	}

	endpoint := esp.Endpoint{}
	outbound := esp.NewPacketFromInner(endpoint, endpoint, inner, 4)

	log.WithField("spi", spi).Info("encrypting demo packet")
	if err := esp.Encrypt(encSA, outbound); err != nil {
		log.WithError(err).Fatal("encrypt failed")
	}
	log.WithField("datagram_len", len(outbound.Raw())).Info("encrypted")

	inbound := esp.NewPacketFromBytes(endpoint, endpoint, outbound.Raw())
	log.Info("decrypting demo packet")
	if err := esp.Decrypt(decSA, inbound, ipwire.ParseInner); err != nil {
		log.WithError(err).Fatal("decrypt failed")
	}

	log.WithField("next_header", inbound.GetNextHeader()).
		WithField("highest_seq", decSA.Window.Highest()).
		Info("round trip succeeded")
}
