package types

import "context"

type Repository interface {
	// FindOrCreate inserta t si no existe otro con el mismo Name. Devuelve el
	// registro que quedó guardado (el existente si ya estaba).
	FindOrCreate(ctx context.Context, t Type) (Type, error)
	List(ctx context.Context) ([]Type, error)
}

// Remote trae los nombres de tipos desde la API de terceros.
type Remote interface {
	// ListTypeNames puede devolver nombres junto con un error si el listado
	// se cortó a mitad de camino.
	ListTypeNames(ctx context.Context) ([]string, error)
}
