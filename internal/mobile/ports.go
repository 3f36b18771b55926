package mobile

import "context"

// DeviceInfo datos del dispositivo que interesan al host.
type DeviceInfo struct {
	Platform  string
	Model     string
	OSVersion string
	Locale    string // BCP 47, p. ej. "ar-SA"
}

// Device acceso a la información del sistema operativo.
type Device interface {
	Info(ctx context.Context) (DeviceInfo, error)
}

// UI operaciones que el host pide a la capa de presentación nativa.
type UI interface {
	SetDirection(dir Direction)
	HideSplash()
	Toast(message string)
	Navigate(route string)
	GoBack()
	Confirm(ctx context.Context, title, message string) bool
	ReportFailure(err error)
	Exit()
}

// EmbeddedServer lo que el host necesita del Lifecycle Manager.
type EmbeddedServer interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	IsRunning() bool
	BaseURL() string
}

// HealthProbe consulta /api/health y devuelve el campo status.
type HealthProbe interface {
	Check(ctx context.Context, baseURL string) (string, error)
}
