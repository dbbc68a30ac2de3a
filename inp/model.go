// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.hjson) model file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/hjson/hjson-go"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/mdl/sld"
	"gonum.org/v1/gonum/spatial/r3"
)

// Material holds material data
type Material struct {
	Name  string     `json:"name"`  // name of material
	Desc  string     `json:"desc"`  // description of material
	Model string     `json:"model"` // name of model; e.g. "oned-elast"
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Sld sld.Model // pointer to solid model
}

// FrameData holds the orientation of a node
type FrameData struct {
	Node int       `json:"node"` // node id
	X    []float64 `json:"x"`    // local x-axis
	Y    []float64 `json:"y"`    // vector in the local xy plane
}

// GoalData holds goal data
type GoalData struct {
	Type   string     `json:"type"`   // goal type; e.g. "bar", "cable", "rod", "beam", "pressure", "support", "support6", "load"
	Nodes  []int      `json:"nodes"`  // node ids
	Mat    string     `json:"mat"`    // material name
	Vec    []float64  `json:"vec"`    // vector data; e.g. force of load or reference z-axis of beam
	Fix    string     `json:"fix"`    // fixed translations; e.g. "xyz"
	FixRot string     `json:"fixrot"` // fixed rotations; e.g. "xyz"
	Faces  [][]int    `json:"faces"`  // triangles (node ids) of pressure goals
	Prms   dbf.Params `json:"prms"`   // extra parameters; e.g. pretension, strength, pressure
	Extra  string     `json:"extra"`  // extra flags (keycodes); e.g. "!rest:current !method:circle"
}

// Param returns the value of an extra parameter or dflt if not given
func (o GoalData) Param(name string, dflt float64) float64 {
	if p := o.Prms.Find(name); p != nil {
		return p.V
	}
	return dflt
}

// Flag returns the value of a keycode in Extra or dflt if not given
func (o GoalData) Flag(key, dflt string) string {
	if o.Extra == "" || o.Extra[0] != '!' {
		return dflt
	}
	if val, found := io.Keycode(o.Extra, key); found && val != "" {
		return val
	}
	return dflt
}

// SolverData holds relaxation solver data
type SolverData struct {
	Type      string  `json:"type"`      // solver name; e.g. "relax"
	NmaxIt    int     `json:"nmaxit"`    // max number of iterations
	Threshold float64 `json:"threshold"` // convergence threshold on the kinetic metric
	Damping   float64 `json:"damping"`   // momentum factor in [0,1)
	MergeTol  float64 `json:"mergetol"`  // tolerance to merge coincident particles
	UseTorque bool    `json:"usetorque"` // account for orientations
	Ngo       int     `json:"ngo"`       // number of goroutines evaluating goals; 0 means all cores
}

// SetDefault sets defaults values
func (o *SolverData) SetDefault() {
	o.Type = "relax"
	o.NmaxIt = 20000
	o.Threshold = 1e-15
	o.Damping = 0.9
	o.MergeTol = 1e-3
	o.UseTorque = true
}

// BucklingData holds data for incremental buckling analyses
type BucklingData struct {
	Start       float64 `json:"start"`       // initial load factor
	Step        float64 `json:"step"`        // load factor increment
	NmaxIncr    int     `json:"nmaxincr"`    // max number of increments
	NmaxIt      int     `json:"nmaxit"`      // max number of relaxation steps per increment
	Threshold   float64 `json:"threshold"`   // convergence threshold on the kinetic metric
	AngleLimit  float64 `json:"anglelimit"`  // [deg] limit of the angle between the load-displacement tangent and the vertical
	DispLimit   float64 `json:"displimit"`   // [mm] limit of any nodal displacement since the unloaded state
	KeepHistory bool    `json:"keephistory"` // keep the state of all increments
}

// SetDefault sets defaults values
func (o *BucklingData) SetDefault() {
	o.Start = 0.1
	o.Step = 0.1
	o.NmaxIncr = 100
	o.NmaxIt = 20000
	o.Threshold = 1e-15
	o.AngleLimit = 5
	o.DispLimit = 1e30
}

// Model holds all data read from a model file
type Model struct {
	Desc      string       `json:"desc"`      // description of model
	Nodes     [][]float64  `json:"nodes"`     // coordinates of nodes [nnod][3]
	Frames    []*FrameData `json:"frames"`    // orientation of nodes; world XY if not given
	Materials []*Material  `json:"materials"` // all materials
	Goals     []*GoalData  `json:"goals"`     // all goals
	Solver    SolverData   `json:"solver"`    // solver data
	Buckling  BucklingData `json:"buckling"`  // buckling data

	// derived
	Dir    string               // directory of model file
	MatDb  map[string]*Material // materials by name
	planes map[int]geo.Plane    // frames of nodes by id
}

// ReadModel reads all model data from a .hjson file
func ReadModel(path string) (o *Model, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", path, err)
	}
	o, err = ParseModel(b)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", path, err)
	}
	o.Dir = filepath.Dir(path)
	return
}

// ParseModel decodes model data in hjson (or json) format
func ParseModel(b []byte) (o *Model, err error) {

	// hjson => json
	var mdat map[string]interface{}
	if err = hjson.Unmarshal(b, &mdat); err != nil {
		return
	}
	if b, err = json.Marshal(mdat); err != nil {
		return
	}

	// decode
	o = new(Model)
	o.Solver.SetDefault()
	o.Buckling.SetDefault()
	if err = json.Unmarshal(b, o); err != nil {
		return nil, err
	}
	err = o.PostProcess()
	if err != nil {
		return nil, err
	}
	return
}

// PostProcess checks nodes and goals and allocates materials
func (o *Model) PostProcess() (err error) {

	// nodes
	for i, x := range o.Nodes {
		if len(x) < 2 || len(x) > 3 {
			return chk.Err("node %d must have 2 or 3 coordinates. %d is invalid", i, len(x))
		}
	}

	// frames
	o.planes = make(map[int]geo.Plane)
	for _, f := range o.Frames {
		if err = o.checkNode(f.Node); err != nil {
			return
		}
		if len(f.X) != 3 || len(f.Y) != 3 {
			return chk.Err("frame of node %d must have 3 components in x and y", f.Node)
		}
		o.planes[f.Node], err = geo.NewPlane(o.Coords(f.Node), vec(f.X), vec(f.Y))
		if err != nil {
			return chk.Err("frame of node %d is invalid:\n%v", f.Node, err)
		}
	}

	// materials
	o.MatDb = make(map[string]*Material)
	for _, m := range o.Materials {
		if _, ok := o.MatDb[m.Name]; ok {
			return chk.Err("material %q is defined more than once", m.Name)
		}
		m.Sld, err = sld.New(m.Model)
		if err != nil {
			return chk.Err("cannot allocate model of material %q:\n%v", m.Name, err)
		}
		err = m.Sld.Init(m.Prms)
		if err != nil {
			return chk.Err("cannot initialise model of material %q:\n%v", m.Name, err)
		}
		o.MatDb[m.Name] = m
	}

	// goals
	for i, g := range o.Goals {
		if g.Type == "" {
			return chk.Err("goal %d has no type", i)
		}
		for _, n := range g.Nodes {
			if err = o.checkNode(n); err != nil {
				return chk.Err("goal %d (%s): %v", i, g.Type, err)
			}
		}
		for _, face := range g.Faces {
			for _, n := range face {
				if err = o.checkNode(n); err != nil {
					return chk.Err("goal %d (%s): %v", i, g.Type, err)
				}
			}
		}
		if g.Extra != "" && g.Extra[0] != '!' {
			return chk.Err("goal %d (%s): extra flags must be keycodes starting with '!'; %q is invalid", i, g.Type, g.Extra)
		}
		if g.Mat != "" {
			if _, ok := o.MatDb[g.Mat]; !ok {
				return chk.Err("goal %d (%s): cannot find material %q", i, g.Type, g.Mat)
			}
		}
	}

	// solver
	if o.Solver.MergeTol < 0 {
		return chk.Err("merge tolerance must be non-negative. %g is invalid", o.Solver.MergeTol)
	}
	return
}

// Coords returns the coordinates of node id
func (o Model) Coords(id int) r3.Vec {
	x := o.Nodes[id]
	if len(x) == 2 {
		return r3.Vec{X: x[0], Y: x[1]}
	}
	return r3.Vec{X: x[0], Y: x[1], Z: x[2]}
}

// Plane returns the frame of node id; world XY at the node if not given
func (o Model) Plane(id int) geo.Plane {
	if p, ok := o.planes[id]; ok {
		return p
	}
	return geo.WorldXY(o.Coords(id))
}

// GetMat returns a material
//  Note: returns nil if not found
func (o Model) GetMat(name string) *Material {
	return o.MatDb[name]
}

// checkNode checks node id
func (o Model) checkNode(id int) error {
	if id < 0 || id >= len(o.Nodes) {
		return chk.Err("node id %d is out of range [0, %d)", id, len(o.Nodes))
	}
	return nil
}

// vec converts a slice into a vector; missing components are zero
func vec(v []float64) (x r3.Vec) {
	if len(v) > 0 {
		x.X = v[0]
	}
	if len(v) > 1 {
		x.Y = v[1]
	}
	if len(v) > 2 {
		x.Z = v[2]
	}
	return
}

// Vector returns the vector data of a goal
func (o GoalData) Vector() r3.Vec {
	return vec(o.Vec)
}
