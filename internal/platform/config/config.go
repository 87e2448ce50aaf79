package config

// Config is the top-level structure holding every runtime setting
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	TMDB     TMDBConfig     `mapstructure:"tmdb"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Reels    ReelsConfig    `mapstructure:"reels"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig controls the page-result cache for the latest-movies listing.
// Backend is either "memory" or "redis".
type CacheConfig struct {
	Backend    string `mapstructure:"backend"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

// UpstreamConfig points at the Ophim catalog API.
type UpstreamConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// TMDBConfig points at the person-metadata API. Every call carries APIKey.
type TMDBConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	ImageBaseURL   string `mapstructure:"image_base_url"`
	APIKey         string `mapstructure:"api_key"`
	Language       string `mapstructure:"language"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketClips     string `mapstructure:"bucket_clips"`
}

// ReelsConfig carries the injected clip table for the bonus-clip feature.
// Source is either "local" (serve from Dir) or "minio".
type ReelsConfig struct {
	Source string           `mapstructure:"source"`
	Dir    string           `mapstructure:"dir"`
	Clips  []ReelClipConfig `mapstructure:"clips"`
}

type ReelClipConfig struct {
	File      string `mapstructure:"file"`
	ActorName string `mapstructure:"actor_name"`
	MovieName string `mapstructure:"movie_name"`
	MovieSlug string `mapstructure:"movie_slug"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}
