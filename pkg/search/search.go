// Package search provides the driver of the recovery: it enumerates search
// cells (reflector x wheel order x ring setting), runs a Bombe per cell on
// a worker pool, reconstructs every surviving hypothesis at message start,
// and ranks the decryptions by English likeness.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package search

import (
	"context"
	"io"
	"runtime"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/coredds/goBombe/internal/alphabet"
	"github.com/coredds/goBombe/internal/rotor"
	"github.com/coredds/goBombe/pkg/bombe"
	"github.com/coredds/goBombe/pkg/enigma"
	"github.com/coredds/goBombe/pkg/menu"
	"github.com/coredds/goBombe/pkg/score"
)

// ErrNoMenu means no crib admitted a placement whose menu contains a cycle;
// without a cycle the Bombe has nothing to contradict.
var ErrNoMenu = errors.New("no crib produced a menu with cycles")

// ErrNoConfiguration means the entire search space was swept without a
// single hypothesis surviving its menu.
var ErrNoConfiguration = errors.New("no configuration recovered")

// Options controls the extent of the search. The zero value searches every
// wheel order of the full catalogue, every ring setting, and reflector B,
// on one worker per logical CPU.
type Options struct {
	// Rotors is the rotor pool for wheel orders, by catalogue name.
	Rotors []string
	// Reflectors lists the reflectors to try, by catalogue name.
	Reflectors []string
	// WheelOrders restricts the search to specific wheel orders, each
	// given left to right (slowest rotor first). Empty means every
	// ordered pick of three distinct rotors from the pool.
	WheelOrders [][]string
	// RingSettings restricts the ring settings, each a three-letter
	// string left to right. Empty means all 26^3.
	RingSettings []string
	// Workers is the worker pool size.
	Workers int
	// AllMenus searches every cyclic menu and ranks the survivors of all
	// of them together, instead of stopping at the first menu that
	// yields survivors. Slower, but robust against a wrong crib
	// placement happening to carry the most paths.
	AllMenus bool
	// Logger receives progress; nil discards it.
	Logger *logrus.Logger
}

// Candidate is one reconstructed decryption: the machine settings at
// message start, the plaintext they produce, and its score.
type Candidate struct {
	Settings  enigma.Settings
	Plaintext string
	Score     float64
}

// Result is the outcome of a crack run.
type Result struct {
	// Best is the highest-scoring candidate; ties break on the canonical
	// settings string, so the winner does not depend on scheduling.
	Best Candidate
	// Candidates holds every survivor, best first.
	Candidates []Candidate
	// MenuOffset and MenuPaths describe the menu that produced the
	// survivors.
	MenuOffset int
	MenuPaths  int
}

// searchMenu pairs a menu with its enumerated paths.
type searchMenu struct {
	menu  *menu.Menu
	paths []string
}

// cell is one unit of Bombe work.
type cell struct {
	reflector string
	order     []string // left to right
	rings     [3]int   // fastest rotor first
	ringLabel string   // left to right
}

// Crack recovers the most English-like decryption of the ciphertext using
// the cribs. Menus are tried in order of decreasing path count; the first
// menu that yields survivors decides the result, unless opts.AllMenus is
// set, in which case the survivors of every cyclic menu are ranked together.
func Crack(ctx context.Context, ciphertext string, cribs []string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	if invalid, err := alphabet.ValidateString(ciphertext); err != nil {
		return nil, errors.Wrapf(err, "invalid character %q in ciphertext", invalid)
	}

	if len(opts.Rotors) == 0 {
		opts.Rotors = enigma.RotorNames()
	}
	if len(opts.Reflectors) == 0 {
		opts.Reflectors = enigma.ReflectorNames()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	orders := opts.WheelOrders
	if len(orders) == 0 {
		orders = wheelOrders(opts.Rotors)
	}

	triples, err := ringTriples(opts.RingSettings)
	if err != nil {
		return nil, err
	}

	menus := buildMenus(cribs, ciphertext, log)
	if len(menus) == 0 {
		return nil, ErrNoMenu
	}

	type candidateRef struct {
		cand Candidate
		sm   searchMenu
	}
	var refs []candidateRef

	for _, sm := range menus {
		log.WithFields(logrus.Fields{
			"offset": sm.menu.Offset,
			"paths":  len(sm.paths),
		}).Info("searching menu")

		candidates, err := searchOneMenu(ctx, ciphertext, sm, orders, triples, opts, log)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			log.WithField("offset", sm.menu.Offset).Info("menu yielded no survivors")
			continue
		}
		for _, c := range candidates {
			refs = append(refs, candidateRef{cand: c, sm: sm})
		}
		if !opts.AllMenus {
			break
		}
	}

	if len(refs) == 0 {
		return nil, ErrNoConfiguration
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].cand.Score != refs[j].cand.Score {
			return refs[i].cand.Score > refs[j].cand.Score
		}
		return refs[i].cand.Settings.Canonical() < refs[j].cand.Settings.Canonical()
	})

	candidates := make([]Candidate, len(refs))
	for i, ref := range refs {
		candidates[i] = ref.cand
	}
	logScoreSummary(candidates, log)

	return &Result{
		Best:       candidates[0],
		Candidates: candidates,
		MenuOffset: refs[0].sm.menu.Offset,
		MenuPaths:  len(refs[0].sm.paths),
	}, nil
}

// buildMenus places every crib at every valid position and keeps the menus
// that contain at least one cycle, most paths first. Cribs that cannot be
// placed are logged and skipped.
func buildMenus(cribs []string, ciphertext string, log *logrus.Logger) []searchMenu {
	var menus []searchMenu
	for _, crib := range cribs {
		positions, err := menu.FindCribPositions(crib, ciphertext)
		if err != nil {
			log.WithError(err).WithField("crib", crib).Warn("skipping crib")
			continue
		}
		if len(positions) == 0 {
			log.WithField("crib", crib).Warn("crib admits no valid position")
			continue
		}
		for _, p := range positions {
			m, err := menu.New(crib, ciphertext, p)
			if err != nil {
				log.WithError(err).WithField("crib", crib).Warn("skipping placement")
				continue
			}
			paths := m.Paths()
			if len(paths) == 0 {
				continue
			}
			menus = append(menus, searchMenu{menu: m, paths: paths})
		}
	}

	// The more cycles a menu has, the harder it is to survive it.
	sort.SliceStable(menus, func(i, j int) bool {
		if len(menus[i].paths) != len(menus[j].paths) {
			return len(menus[i].paths) > len(menus[j].paths)
		}
		return menus[i].menu.Offset < menus[j].menu.Offset
	})
	return menus
}

// searchOneMenu fans the menu's cells out over the worker pool and collects
// reconstructed candidates through a single consumer.
func searchOneMenu(ctx context.Context, ciphertext string, sm searchMenu, orders [][]string, triples []ringTriple, opts Options, log *logrus.Logger) ([]Candidate, error) {
	g, ctx := errgroup.WithContext(ctx)

	cells := make(chan cell)
	found := make(chan []Candidate)

	g.Go(func() error {
		defer close(cells)
		for _, reflName := range opts.Reflectors {
			for _, order := range orders {
				for _, rings := range triples {
					c := cell{reflector: reflName, order: order, rings: rings.indices, ringLabel: rings.label}
					select {
					case cells <- c:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
		}
		return nil
	})

	var collected []Candidate
	done := make(chan struct{})
	go func() {
		defer close(done)
		for cands := range found {
			collected = append(collected, cands...)
		}
	}()

	for w := 0; w < opts.Workers; w++ {
		g.Go(func() error {
			for c := range cells {
				cands, err := runCell(ciphertext, sm, c, log)
				if err != nil {
					return err
				}
				if len(cands) == 0 {
					continue
				}
				select {
				case found <- cands:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	err := g.Wait()
	close(found)
	<-done
	if err != nil {
		return nil, err
	}
	return collected, nil
}

// runCell runs one Bombe and reconstructs its survivors.
func runCell(ciphertext string, sm searchMenu, c cell, log *logrus.Logger) ([]Candidate, error) {
	template, err := machineTemplate(c)
	if err != nil {
		return nil, err
	}

	b, err := bombe.New(template, c.rings)
	if err != nil {
		return nil, err
	}

	survivors := b.Run(sm.menu, sm.paths)
	if len(survivors) == 0 {
		return nil, nil
	}

	var candidates []Candidate
	for steckering, positions := range survivors {
		for _, pos := range positions {
			cand, err := reconstruct(ciphertext, sm.menu, c, steckering, pos)
			if err != nil {
				// A survivor that cannot be reconstructed is a bug in the
				// cell, not in the caller's input.
				log.WithError(err).WithFields(logrus.Fields{
					"order":     c.order,
					"rings":     c.ringLabel,
					"positions": pos.String(),
				}).Warn("dropping unreconstructable survivor")
				continue
			}
			candidates = append(candidates, cand)
		}
	}

	log.WithFields(logrus.Fields{
		"order":      c.order,
		"rings":      c.ringLabel,
		"steckers":   len(survivors),
		"candidates": len(candidates),
	}).Info("bombe survivors")

	return candidates, nil
}

// machineTemplate builds the plugboard-free machine for a cell.
func machineTemplate(c cell) (*enigma.Machine, error) {
	n := len(c.order)
	rotors := make([]*rotor.Rotor, n)
	for i, name := range c.order {
		r, err := enigma.NewRotor(name)
		if err != nil {
			return nil, err
		}
		rotors[n-1-i] = r
	}
	refl, err := enigma.NewReflector(c.reflector)
	if err != nil {
		return nil, err
	}
	return enigma.New(enigma.WithRotors(rotors...), enigma.WithReflector(refl))
}

// reconstruct configures a machine for one survivor, rewinds it from the
// crib placement to message start, rekeys the offsets so the settings
// describe that state, and scores the decryption.
func reconstruct(ciphertext string, m *menu.Menu, c cell, steckering bombe.Steckering, pos bombe.Position) (Candidate, error) {
	// The survivor's positions are fastest first; key sheets are slowest
	// first.
	offsets := string([]byte{byte('A' + pos[2]), byte('A' + pos[1]), byte('A' + pos[0])})

	mach, err := enigma.NewMachine(c.order, c.reflector, c.ringLabel, offsets, steckering.Pairs())
	if err != nil {
		return Candidate{}, err
	}

	for i := 0; i < m.Offset; i++ {
		mach.Unstep()
	}

	// Fold the rewound position back into each rotor's offset, so the
	// reported settings are the message-start key and Reset holds here.
	for _, r := range mach.Rotors() {
		r.Set(r.RingSetting(), alphabet.Mod(r.RingSetting()-r.Position()))
	}

	settings := mach.Settings()

	plaintext, err := mach.Encrypt(ciphertext)
	if err != nil {
		return Candidate{}, err
	}
	sc, err := score.Text(plaintext)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{Settings: settings, Plaintext: plaintext, Score: sc}, nil
}

// logScoreSummary logs the score distribution of the survivors.
func logScoreSummary(candidates []Candidate, log *logrus.Logger) {
	if len(candidates) == 0 {
		return
	}
	values := make([]float64, len(candidates))
	for i, c := range candidates {
		values[i] = c.Score
	}
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	log.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"max":        max,
		"mean":       mean,
		"median":     median,
	}).Debug("survivor score distribution")
}

// wheelOrders enumerates every ordered pick of three distinct rotors from
// the pool, left to right.
func wheelOrders(pool []string) [][]string {
	var orders [][]string
	for _, a := range pool {
		for _, b := range pool {
			if b == a {
				continue
			}
			for _, c := range pool {
				if c == a || c == b {
					continue
				}
				orders = append(orders, []string{a, b, c})
			}
		}
	}
	return orders
}

// ringTriple carries a ring setting in both forms the driver needs.
type ringTriple struct {
	label   string // left to right, as configured
	indices [3]int // fastest rotor first, as the Bombe wants it
}

// ringTriples expands the requested ring settings, or the full 26^3 sweep
// when none were requested.
func ringTriples(requested []string) ([]ringTriple, error) {
	if len(requested) > 0 {
		triples := make([]ringTriple, 0, len(requested))
		for _, label := range requested {
			if len(label) != 3 {
				return nil, errors.Errorf("ring setting %q must be three letters", label)
			}
			if invalid, err := alphabet.ValidateString(label); err != nil {
				return nil, errors.Wrapf(err, "invalid character %q in ring setting %q", invalid, label)
			}
			triples = append(triples, ringTriple{
				label:   label,
				indices: [3]int{int(label[2] - 'A'), int(label[1] - 'A'), int(label[0] - 'A')},
			})
		}
		return triples, nil
	}

	triples := make([]ringTriple, 0, alphabet.Size*alphabet.Size*alphabet.Size)
	for a := 0; a < alphabet.Size; a++ {
		for b := 0; b < alphabet.Size; b++ {
			for c := 0; c < alphabet.Size; c++ {
				label := string([]byte{byte('A' + a), byte('A' + b), byte('A' + c)})
				triples = append(triples, ringTriple{label: label, indices: [3]int{c, b, a}})
			}
		}
	}
	return triples, nil
}
