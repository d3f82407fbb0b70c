package render

import "sync"

// MemoryMessage is an in-memory MessageRegion and NoticeRegion. It records
// every rendered frame, which tests use to assert countdown sequences.
type MemoryMessage struct {
	mu      sync.Mutex
	content string
	state   MessageState
	notice  string
	history []string
}

// NewMemoryMessage creates an empty in-memory message region.
func NewMemoryMessage() *MemoryMessage {
	return &MemoryMessage{}
}

func (m *MemoryMessage) SetMessage(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = content
	m.history = append(m.history, content)
}

func (m *MemoryMessage) Message() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}

func (m *MemoryMessage) SetState(state MessageState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}

func (m *MemoryMessage) State() MessageState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *MemoryMessage) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = ""
	m.state = StateNeutral
	m.history = append(m.history, "")
}

func (m *MemoryMessage) SetNotice(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notice = text
}

func (m *MemoryMessage) Notice() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notice
}

func (m *MemoryMessage) ClearNotice() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notice = ""
}

// History returns every content render in order, including clears.
func (m *MemoryMessage) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// MemoryStage is an in-memory Stage backed by MemoryContainers.
type MemoryStage struct {
	mu         sync.Mutex
	containers map[string]*MemoryContainer
}

// NewMemoryStage creates an empty stage.
func NewMemoryStage() *MemoryStage {
	return &MemoryStage{containers: make(map[string]*MemoryContainer)}
}

// Container fetches or creates the named container.
func (s *MemoryStage) Container(name string) Container {
	return s.Memory(name)
}

// All returns a snapshot of every container on the stage.
func (s *MemoryStage) All() []*MemoryContainer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*MemoryContainer, 0, len(s.containers))
	for _, c := range s.containers {
		out = append(out, c)
	}
	return out
}

// Memory is Container with the concrete type, for test inspection.
func (s *MemoryStage) Memory(name string) *MemoryContainer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[name]
	if !ok {
		c = &MemoryContainer{
			particles:     make(map[int]Particle),
			spawnedByKind: make(map[ParticleKind]int),
		}
		s.containers[name] = c
	}
	return c
}

// MemoryContainer tracks live particles and lifetime spawn counts.
type MemoryContainer struct {
	mu            sync.Mutex
	nextID        int
	particles     map[int]Particle
	spawned       int
	spawnedByKind map[ParticleKind]int
}

func (c *MemoryContainer) Spawn(p Particle) Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.particles[id] = p
	c.spawned++
	c.spawnedByKind[p.Kind]++
	return &memoryElement{container: c, id: id}
}

func (c *MemoryContainer) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.particles = make(map[int]Particle)
}

func (c *MemoryContainer) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.particles)
}

// Spawned returns the total number of particles ever spawned.
func (c *MemoryContainer) Spawned() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spawned
}

// SpawnedOf returns how many particles of one kind were ever spawned.
func (c *MemoryContainer) SpawnedOf(kind ParticleKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spawnedByKind[kind]
}

// Particles returns a snapshot of the live particles.
func (c *MemoryContainer) Particles() []Particle {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Particle, 0, len(c.particles))
	for _, p := range c.particles {
		out = append(out, p)
	}
	return out
}

type memoryElement struct {
	container *MemoryContainer
	id        int
}

// Remove deletes the particle. A no-op if the container was already
// cleared.
func (e *memoryElement) Remove() {
	e.container.mu.Lock()
	defer e.container.mu.Unlock()
	delete(e.container.particles, e.id)
}
