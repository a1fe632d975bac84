package gfx

type drawCall struct {
	mode       DrawMode
	count      int
	byteOffset int
}

type bindCall struct {
	id   TextureID
	unit int
}

// fakeDevice records every backend call so tests can assert exactly
// what would have reached the GPU.
type fakeDevice struct {
	limits Limits

	nextTexture TextureID
	created     []TextureID
	deleted     []TextureID
	binds       []bindCall
	uploads     []SubImageUpload

	nextGeometry  GeometryID
	geomPositions [][]float32
	geomUVs       [][]float32
	geomIndices   [][]uint32
	geomBinds     []GeometryID
	geomDeleted   []GeometryID

	draws []drawCall

	createTextureErr error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{limits: Limits{
		MaxTextureSize:  4096,
		MaxArrayLayers:  256,
		MaxTextureUnits: 16,
	}}
}

func (d *fakeDevice) Limits() Limits { return d.limits }

func (d *fakeDevice) CreateTextureArray(unit, width, height, depth int) (TextureID, error) {
	if d.createTextureErr != nil {
		return 0, d.createTextureErr
	}
	d.nextTexture++
	d.created = append(d.created, d.nextTexture)
	return d.nextTexture, nil
}

func (d *fakeDevice) DeleteTextureArray(id TextureID) {
	d.deleted = append(d.deleted, id)
}

func (d *fakeDevice) BindTextureArray(id TextureID, unit int) {
	d.binds = append(d.binds, bindCall{id: id, unit: unit})
}

func (d *fakeDevice) UploadSubImage(id TextureID, unit int, up SubImageUpload) {
	d.uploads = append(d.uploads, up)
}

func (d *fakeDevice) CreateGeometry(positions, uvs []float32, indices []uint32) (GeometryID, error) {
	d.nextGeometry++
	d.geomPositions = append(d.geomPositions, positions)
	d.geomUVs = append(d.geomUVs, uvs)
	d.geomIndices = append(d.geomIndices, indices)
	return d.nextGeometry, nil
}

func (d *fakeDevice) BindGeometry(id GeometryID) {
	d.geomBinds = append(d.geomBinds, id)
}

func (d *fakeDevice) DeleteGeometry(id GeometryID) {
	d.geomDeleted = append(d.geomDeleted, id)
}

func (d *fakeDevice) DrawIndexed(mode DrawMode, count, byteOffset int) {
	d.draws = append(d.draws, drawCall{mode: mode, count: count, byteOffset: byteOffset})
}

// fakeSink records uniform writes by name.
type fakeSink struct {
	ints  map[string][]int
	vec2s map[string][][2]float32
	mat4s map[string][][16]float32
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		ints:  map[string][]int{},
		vec2s: map[string][][2]float32{},
		mat4s: map[string][][16]float32{},
	}
}

func (s *fakeSink) SetInt(name string, v int) {
	s.ints[name] = append(s.ints[name], v)
}

func (s *fakeSink) SetVec2(name string, x, y float32) {
	s.vec2s[name] = append(s.vec2s[name], [2]float32{x, y})
}

func (s *fakeSink) SetMat4(name string, m [16]float32) {
	s.mat4s[name] = append(s.mat4s[name], m)
}
