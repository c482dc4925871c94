package nn

import (
	"github.com/CardinalModules/ChowDSP-VCV/internal/serialization"
	"github.com/CardinalModules/ChowDSP-VCV/internal/tensor"
)

// StateLayer is implemented by weight-bearing layers that can export and
// import their parameters as named records.
//
// LoadStateDict is tolerant by contract: a missing field, or a field whose
// record does not match the target tensor's shape, leaves the existing
// parameter values untouched. This allows loading documents written by older
// builds that lack a field added later. Runtime state (a GRU's hidden state)
// is never part of a state dict.
type StateLayer interface {
	StateDict() map[string]serialization.Record
	LoadStateDict(sd map[string]serialization.Record)
}

// loadInto overwrites dst from sd[key] if the record is present and matches
// shape; otherwise dst keeps its prior values.
func loadInto(sd map[string]serialization.Record, key string, shape tensor.Shape, dst []float32) {
	rec, ok := sd[key]
	if !ok || !rec.Matches(shape) {
		return
	}
	copy(dst, rec.Data)
}

// StateDict exports the affine layer's parameters under "W" and "b".
func (a *Affine) StateDict() map[string]serialization.Record {
	return map[string]serialization.Record{
		"W": serialization.NewRecord(a.w.Shape(), a.w.Data()),
		"b": serialization.NewRecord(a.b.Shape(), a.b),
	}
}

// LoadStateDict overwrites the affine layer's parameters from the dict.
func (a *Affine) LoadStateDict(sd map[string]serialization.Record) {
	loadInto(sd, "W", a.w.Shape(), a.w.Data())
	loadInto(sd, "b", a.b.Shape(), a.b)
}

// StateDict exports the GRU's parameters under per-gate field names.
func (g *GRU) StateDict() map[string]serialization.Record {
	return map[string]serialization.Record{
		"Wr": serialization.NewRecord(g.wr.Shape(), g.wr.Data()),
		"Wz": serialization.NewRecord(g.wz.Shape(), g.wz.Data()),
		"Wn": serialization.NewRecord(g.wn.Shape(), g.wn.Data()),
		"Ur": serialization.NewRecord(g.ur.Shape(), g.ur.Data()),
		"Uz": serialization.NewRecord(g.uz.Shape(), g.uz.Data()),
		"Un": serialization.NewRecord(g.un.Shape(), g.un.Data()),
		"br": serialization.NewRecord(g.br.Shape(), g.br),
		"bz": serialization.NewRecord(g.bz.Shape(), g.bz),
		"bn": serialization.NewRecord(g.bn.Shape(), g.bn),
	}
}

// LoadStateDict overwrites the GRU's parameters from the dict. The hidden
// state is not serialized and is left untouched.
func (g *GRU) LoadStateDict(sd map[string]serialization.Record) {
	loadInto(sd, "Wr", g.wr.Shape(), g.wr.Data())
	loadInto(sd, "Wz", g.wz.Shape(), g.wz.Data())
	loadInto(sd, "Wn", g.wn.Shape(), g.wn.Data())
	loadInto(sd, "Ur", g.ur.Shape(), g.ur.Data())
	loadInto(sd, "Uz", g.uz.Shape(), g.uz.Data())
	loadInto(sd, "Un", g.un.Shape(), g.un.Data())
	loadInto(sd, "br", g.br.Shape(), g.br)
	loadInto(sd, "bz", g.bz.Shape(), g.bz)
	loadInto(sd, "bn", g.bn.Shape(), g.bn)
}
