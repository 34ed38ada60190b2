package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/genid/pkg/genid"
)

// handleInfo is the decoded form of one handle.
type handleInfo struct {
	Width   string `json:"width"`
	Value   uint64 `json:"value"`
	Hex     string `json:"hex"`
	Kind    uint8  `json:"kind"`
	Counter uint32 `json:"counter"`
	Slot    uint32 `json:"slot"`
}

// codec runs handle operations for one width class chosen at runtime.
type codec interface {
	layout() genid.Layout
	decode(v uint64) handleInfo
	encode(kind uint8, counter, slot uint32) (handleInfo, error)
	bump(v uint64, delta uint32, strict bool) (handleInfo, error)
}

type codecOf[W genid.Width] struct{}

func (codecOf[W]) layout() genid.Layout {
	return genid.LayoutOf[W]()
}

func (codecOf[W]) decode(v uint64) handleInfo {
	return describe(genid.FromInteger[W](v))
}

func (codecOf[W]) encode(kind uint8, counter, slot uint32) (handleInfo, error) {
	k := genid.Kind[W](kind)
	if err := genid.CheckComponents(k, counter); err != nil {
		return handleInfo{}, err
	}
	return describe(genid.FromComponents(k, counter, genid.Slot(slot))), nil
}

func (codecOf[W]) bump(v uint64, delta uint32, strict bool) (handleInfo, error) {
	h := genid.FromInteger[W](v)
	if strict {
		if err := h.CheckIncrement(delta); err != nil {
			return handleInfo{}, err
		}
	}
	return describe(h.Add(delta)), nil
}

func describe[W genid.Width](h genid.Handle[W]) handleInfo {
	var w W
	kind, counter, slot := h.Unpack()
	return handleInfo{
		Width:   w.Name(),
		Value:   h.ToInteger(),
		Hex:     fmt.Sprintf("0x%016X", h.ToInteger()),
		Kind:    kind.Raw(),
		Counter: counter,
		Slot:    slot.Raw(),
	}
}

// codecFor resolves a width class name to its codec.
func codecFor(name string) (codec, error) {
	l, err := genid.LayoutByName(name)
	if err != nil {
		return nil, err
	}
	switch l.KindBits {
	case 1:
		return codecOf[genid.Narrow]{}, nil
	case 2:
		return codecOf[genid.Small]{}, nil
	case 3:
		return codecOf[genid.Medium]{}, nil
	default:
		return codecOf[genid.Wide]{}, nil
	}
}

// parseHandle accepts decimal, 0x hex, 0o octal or 0b binary, with optional
// '_' digit separators.
func parseHandle(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid handle %q: %w", s, err)
	}
	return v, nil
}
