// Command modbus-probe dials a Modbus/TCP endpoint, streams the
// connection through the dissector, and prints one line per decoded
// message. It optionally records every message to a capture store.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/modbus-tools/dissector/internal/capturestore"
	"github.com/modbus-tools/dissector/internal/registry"
	"github.com/modbus-tools/dissector/internal/serialgateway"

	modbus "github.com/modbus-tools/dissector"
)

func directionFromFlag(s string) (modbus.Direction, error) {
	switch s {
	case "server":
		return modbus.ToServer, nil
	case "client":
		return modbus.ToClient, nil
	case "unknown":
		return modbus.Unknown, nil
	default:
		return modbus.Unknown, fmt.Errorf("unrecognized -dir value %q (want server, client, or unknown)", s)
	}
}

func main() {
	addr := flag.String("addr", "", "TCP address of the Modbus/TCP endpoint to dial")
	dir := flag.String("dir", "unknown", "traffic direction to assume: server, client, or unknown")
	dbPath := flag.String("db", "", "optional sqlite path to record every decoded message")
	flag.Parse()

	if *addr == "" {
		fmt.Fprintln(os.Stderr, "modbus-probe: -addr is required")
		os.Exit(2)
	}

	direction, err := directionFromFlag(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "modbus-probe: %v\n", err)
		os.Exit(2)
	}

	var store *capturestore.Store
	if *dbPath != "" {
		store, err = capturestore.Open(*dbPath)
		if err != nil {
			log.Fatalf("modbus-probe: %v", err)
		}
		defer store.Close()
	}

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		log.Fatalf("modbus-probe: dial %s: %v", *addr, err)
	}
	defer conn.Close()

	reg := registry.Default()
	reassembler := serialgateway.NewReassembler(conn, direction)

	for {
		msg, raw, err := reassembler.Next()
		if err != nil {
			log.Fatalf("modbus-probe: %v", err)
		}

		fmt.Println(reg.Describe(msg))

		if store != nil {
			if err := store.Record(direction.String(), conn.RemoteAddr().String(), msg, raw); err != nil {
				log.Printf("modbus-probe: record: %v", err)
			}
		}
	}
}
