// Package catalog holds the static category/service table offered by the
// marketplace. It is the single source of truth: grids, the offering wizard
// and offering validation all reference entries by id.
package catalog

// Entry is an immutable (id, display name, glyph) tuple.
type Entry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Category ids.
const (
	Hogar      = "hogar"
	Mascotas   = "mascotas"
	Deporte    = "deporte"
	Estetica   = "estetica"
	Asistencia = "asistencia"
	Mas        = "mas"
)

// DefaultCategory is the grid shown when no category is selected.
const DefaultCategory = Hogar

var categories = []Entry{
	{ID: Hogar, Name: "Hogar", Emoji: "🏠"},
	{ID: Mascotas, Name: "Mascotas", Emoji: "🐾"},
	{ID: Deporte, Name: "Deporte", Emoji: "⚽"},
	{ID: Estetica, Name: "Estética", Emoji: "💅"},
	{ID: Asistencia, Name: "Asistencia", Emoji: "🤝"},
	{ID: Mas, Name: "Más", Emoji: "✨"},
}

var services = map[string][]Entry{
	Hogar: {
		{ID: "pintores", Name: "Pintores", Emoji: "🎨"},
		{ID: "jardineria", Name: "Jardinería", Emoji: "🌳"},
		{ID: "mudanzas", Name: "Mudanzas", Emoji: "📦"},
		{ID: "seguridad", Name: "Seguridad", Emoji: "🔒"},
		{ID: "pileteros", Name: "Pileteros", Emoji: "🏊"},
		{ID: "limpieza", Name: "Limpieza", Emoji: "🧹"},
		{ID: "carpinteria", Name: "Carpintería", Emoji: "🔨"},
		{ID: "plomeria", Name: "Plomería", Emoji: "🔧"},
	},
	Mascotas: {
		{ID: "veterinarias", Name: "Veterinarias", Emoji: "🏥"},
		{ID: "guarderias", Name: "Guarderías", Emoji: "🏠"},
		{ID: "adopciones", Name: "Adopciones", Emoji: "🐶"},
		{ID: "pensiones", Name: "Pensiones", Emoji: "🐎"},
		{ID: "peluquerias", Name: "Peluquerías", Emoji: "✂️"},
		{ID: "paseadores", Name: "Paseadores", Emoji: "🦮"},
		{ID: "adiestradores", Name: "Adiestradores", Emoji: "🦴"},
		{ID: "clases-equitacion", Name: "Clases Equitación", Emoji: "🐎"},
	},
	Deporte: {
		{ID: "golf", Name: "Golf", Emoji: "⛳"},
		{ID: "navegacion", Name: "Navegación", Emoji: "⛵"},
		{ID: "tennis", Name: "Tennis", Emoji: "🎾"},
		{ID: "gym", Name: "Gym", Emoji: "💪"},
		{ID: "skate", Name: "Skate", Emoji: "🛹"},
		{ID: "snow-ski", Name: "Snow & Ski", Emoji: "🎿"},
		{ID: "surf", Name: "Surf", Emoji: "🏄"},
		{ID: "yoga", Name: "Yoga", Emoji: "🧘"},
	},
	Estetica: {
		{ID: "tatuajes", Name: "Tatuajes", Emoji: "💉"},
		{ID: "salones", Name: "Salones", Emoji: "💅"},
		{ID: "peluquerias", Name: "Peluquerías", Emoji: "💇"},
		{ID: "tratamientos", Name: "Tratamientos", Emoji: "🧴"},
		{ID: "depilacion", Name: "Depilación", Emoji: "✨"},
		{ID: "spa", Name: "Spa", Emoji: "🧖"},
		{ID: "masajes", Name: "Masajes", Emoji: "💆"},
		{ID: "asesoria", Name: "Asesoría", Emoji: "👗"},
	},
	Asistencia: {
		{ID: "ninos", Name: "Niños", Emoji: "👶"},
		{ID: "adultos", Name: "Adultos", Emoji: "🧓"},
		{ID: "nutricion", Name: "Nutrición", Emoji: "🥗"},
		{ID: "psicologia", Name: "Psicología", Emoji: "🧠"},
		{ID: "mecanica", Name: "Mecánica", Emoji: "🔧"},
		{ID: "tecnologica", Name: "Tecnológica", Emoji: "💻"},
		{ID: "idiomas", Name: "Idiomas", Emoji: "🗣️"},
		{ID: "viajes", Name: "Viajes", Emoji: "✈️"},
	},
	Mas: {
		{ID: "musica", Name: "Clases de música", Emoji: "🎹"},
		{ID: "fotografia", Name: "Fotografía & video", Emoji: "📸"},
		{ID: "artes-plasticas", Name: "Artes plásticas", Emoji: "🎨"},
		{ID: "diseno-moda", Name: "Diseño & moda", Emoji: "👗"},
		{ID: "influencers", Name: "Influencers", Emoji: "📱"},
		{ID: "artes-escenicas", Name: "Artes escénicas", Emoji: "💃"},
		{ID: "exposiciones", Name: "Exposiciones", Emoji: "🎭"},
		{ID: "astrologia", Name: "Astrología", Emoji: "🔮"},
	},
}

// Categories returns the six categories in display order.
func Categories() []Entry {
	out := make([]Entry, len(categories))
	copy(out, categories)
	return out
}

// ServicesFor returns the service types of a category, or nil for an
// unknown category id.
func ServicesFor(categoryID string) []Entry {
	list, ok := services[categoryID]
	if !ok {
		return nil
	}
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// ValidCategory reports whether id names a catalog category.
func ValidCategory(id string) bool {
	_, ok := services[id]
	return ok
}

// Valid reports whether (categoryID, serviceID) is a catalog pair.
func Valid(categoryID, serviceID string) bool {
	for _, s := range services[categoryID] {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}

// CategoryName returns the display name for a category id, or the empty
// string for an unknown id.
func CategoryName(id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// ServiceName returns the display name of a service within a category.
func ServiceName(categoryID, serviceID string) string {
	for _, s := range services[categoryID] {
		if s.ID == serviceID {
			return s.Name
		}
	}
	return ""
}
