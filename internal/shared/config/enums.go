//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package config

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// SourceKind selects where database records are read from
// ENUM(notion,file)
type SourceKind string
