package models

import "time"

// ServiceOffering is a single published (category, service type, terms)
// tuple a profile advertises. The category/service pair must come from the
// static catalog. Rating, reviews, verification and portfolio are zeroed at
// creation and owned by the backend afterwards.
type ServiceOffering struct {
	Categoria      string    `bson:"categoria" json:"categoria"`
	TipoServicio   string    `bson:"tipo_servicio" json:"tipo_servicio"`
	Descripcion    string    `bson:"descripcion" json:"descripcion"`
	Ubicacion      string    `bson:"ubicacion" json:"ubicacion"`
	RadioCobertura int       `bson:"radio_cobertura" json:"radio_cobertura"` // km, integer in [1,100]
	Horarios       string    `bson:"horarios" json:"horarios"`
	FechaRegistro  time.Time `bson:"fecha_registro" json:"fecha_registro"`
	Calificacion   float64   `bson:"calificacion" json:"calificacion"`
	Reviews        int       `bson:"reviews" json:"reviews"`
	Verified       bool      `bson:"verified" json:"verified"`
	PortfolioURLs  []string  `bson:"portfolio_urls" json:"portfolio_urls"`
}

// Profile is the usuarios document describing a user as a service
// seeker/provider. Identity attributes (name, email, photo, verified flag)
// and profile attributes share one document keyed by the identity id.
type Profile struct {
	ID                 string            `bson:"id" json:"id"`
	Nombre             string            `bson:"nombre" json:"nombre"`
	CorreoElectronico  string            `bson:"correo_electronico" json:"correo_electronico"`
	NumeroTelefono     string            `bson:"numero_telefono" json:"numero_telefono"`
	Direccion          string            `bson:"direccion" json:"direccion"`
	NombreUsuario      string            `bson:"nombre_usuario" json:"nombre_usuario"`
	FechaRegistro      time.Time         `bson:"fecha_registro" json:"fecha_registro"`
	EmailVerificado    bool              `bson:"email_verificado" json:"email_verificado"`
	FotoPerfil         string            `bson:"foto_perfil,omitempty" json:"foto_perfil,omitempty"`
	Profesion          string            `bson:"profesion,omitempty" json:"profesion,omitempty"`
	Servicios          []string          `bson:"servicios" json:"servicios"`
	Ubicacion          string            `bson:"ubicacion,omitempty" json:"ubicacion,omitempty"`
	Descripcion        string            `bson:"descripcion,omitempty" json:"descripcion,omitempty"`
	Calificacion       float64           `bson:"calificacion" json:"calificacion"` // backend-computed, read-only here
	Reviews            int               `bson:"reviews" json:"reviews"`           // backend-computed, read-only here
	Verificado         bool              `bson:"verificado" json:"verificado"`
	ServiciosOfrecidos []ServiceOffering `bson:"servicios_ofrecidos,omitempty" json:"servicios_ofrecidos,omitempty"`

	// Credentials. Never serialized out; the plain password only travels
	// inbound on registration.
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	Disabled     bool      `bson:"disabled" json:"-"`
	UpdatedAt    time.Time `bson:"updated_at" json:"-"`
}

// ProfileUpdate carries the partial fields an owner may merge onto their
// profile. Zero values mean "leave unchanged".
type ProfileUpdate struct {
	Nombre         string   `json:"nombre,omitempty"`
	NumeroTelefono string   `json:"numero_telefono,omitempty"`
	Direccion      string   `json:"direccion,omitempty"`
	Profesion      string   `json:"profesion,omitempty"`
	Servicios      []string `json:"servicios,omitempty"`
	Ubicacion      string   `json:"ubicacion,omitempty"`
	Descripcion    string   `json:"descripcion,omitempty"`
	FotoPerfil     string   `json:"foto_perfil,omitempty"`
}

// Identity is the safe, session-facing view of an authenticated user.
type Identity struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Email           string `json:"email"`
	FotoPerfil      string `json:"foto_perfil,omitempty"`
	EmailVerificado bool   `json:"email_verificado"`
}

// IdentityOf projects the session-facing identity out of a profile document.
func IdentityOf(p *Profile) *Identity {
	if p == nil {
		return nil
	}
	return &Identity{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Email:           p.CorreoElectronico,
		FotoPerfil:      p.FotoPerfil,
		EmailVerificado: p.EmailVerificado,
	}
}
