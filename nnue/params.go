package nnue

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/nnuekit/nnue/nnue/common"
)

// ArchName is written into the parameter file header and is purely
// descriptive; it is never compared, the composed hash is.
const ArchName = "HalfKP-256x2-32-32-1"

// Header is the parameter file's preamble: a format version,
// the composed architecture hash this file was written for, and the
// length-prefixed architecture name.
type Header struct {
	Version      uint32
	ComposedHash uint32
	Arch         string
}

func readHeader(r io.Reader) (Header, error) {
	var h Header
	var err error
	if h.Version, err = common.ReadLittleEndian[uint32](r); err != nil {
		return h, wrapRead("header version", err)
	}
	if h.ComposedHash, err = common.ReadLittleEndian[uint32](r); err != nil {
		return h, wrapRead("header composed hash", err)
	}
	archLen, err := common.ReadLittleEndian[uint32](r)
	if err != nil {
		return h, wrapRead("header arch name length", err)
	}
	archBytes := make([]byte, archLen)
	if _, err := io.ReadFull(r, archBytes); err != nil {
		return h, wrapRead("header arch name", err)
	}
	h.Arch = string(archBytes)
	return h, nil
}

func writeHeader(w io.Writer, h Header) error {
	if err := common.WriteLittleEndian(w, h.Version); err != nil {
		return fmt.Errorf("write header version: %w", err)
	}
	if err := common.WriteLittleEndian(w, h.ComposedHash); err != nil {
		return fmt.Errorf("write header composed hash: %w", err)
	}
	if err := common.WriteLittleEndian(w, uint32(len(h.Arch))); err != nil {
		return fmt.Errorf("write header arch name length: %w", err)
	}
	if _, err := w.Write([]byte(h.Arch)); err != nil {
		return fmt.Errorf("write header arch name: %w", err)
	}
	return nil
}

func wrapRead(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w", what, ErrTruncated)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// Evaluator bundles a feature transformer and dense layer stack loaded
// from one parameter file. Load validates the composed architecture hash
// before accepting any section's contents.
type Evaluator struct {
	FeatureTransformer *FeatureTransformer
	Network            *Network
}

// composedHash is the architecture hash this file's contents must match:
// the XOR of the feature transformer's hash and the network's hash, the
// same fold the teacher's Network.calculateHash uses.
func (e *Evaluator) composedHash() uint32 {
	return e.FeatureTransformer.HashValue() ^ e.Network.HashValue()
}

// Load reads a parameter file from r into a fresh Evaluator shaped by
// the given feature transformer and network (both must already be
// allocated with the right dimensions; Load fills in their weights).
func Load(r io.Reader, ft *FeatureTransformer, net *Network) (*Evaluator, error) {
	e := &Evaluator{FeatureTransformer: ft, Network: net}

	br := bufio.NewReader(r)
	header, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if header.Version != Version {
		return nil, fmt.Errorf("parameter file version %#x, expected %#x: %w", header.Version, Version, ErrArchMismatch)
	}
	want := e.composedHash()
	if header.ComposedHash != want {
		return nil, fmt.Errorf("parameter file hash %#x, network expects %#x: %w", header.ComposedHash, want, ErrArchMismatch)
	}

	ftHash, err := common.ReadLittleEndian[uint32](br)
	if err != nil {
		return nil, wrapRead("feature transformer section hash", err)
	}
	if ftHash != ft.HashValue() {
		return nil, fmt.Errorf("feature transformer hash %#x, expected %#x: %w", ftHash, ft.HashValue(), ErrArchMismatch)
	}
	if err := ft.ReadParameters(br); err != nil {
		return nil, wrapRead("feature transformer parameters", err)
	}

	netHash, err := common.ReadLittleEndian[uint32](br)
	if err != nil {
		return nil, wrapRead("network section hash", err)
	}
	if netHash != net.HashValue() {
		return nil, fmt.Errorf("network hash %#x, expected %#x: %w", netHash, net.HashValue(), ErrArchMismatch)
	}
	if err := net.ReadParameters(br); err != nil {
		return nil, wrapRead("network parameters", err)
	}

	return e, nil
}

// Save writes e's feature transformer and network to w in the format
// Load reads.
func Save(w io.Writer, e *Evaluator) error {
	if err := writeHeader(w, Header{Version: Version, ComposedHash: e.composedHash(), Arch: ArchName}); err != nil {
		return err
	}
	if err := common.WriteLittleEndian(w, e.FeatureTransformer.HashValue()); err != nil {
		return fmt.Errorf("write feature transformer section hash: %w", err)
	}
	if err := e.FeatureTransformer.WriteParameters(w); err != nil {
		return fmt.Errorf("write feature transformer parameters: %w", err)
	}
	if err := common.WriteLittleEndian(w, e.Network.HashValue()); err != nil {
		return fmt.Errorf("write network section hash: %w", err)
	}
	if err := e.Network.WriteParameters(w); err != nil {
		return fmt.Errorf("write network parameters: %w", err)
	}
	return nil
}
