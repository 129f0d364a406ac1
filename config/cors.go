package config

import "strings"

type Cors struct {
	// 允許的跨域來源，逗號分隔；空值等同 "*"
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS" json:"allowed_origins" yaml:"allowed_origins"`
}

func (c Cors) Origins() []string {
	if strings.TrimSpace(c.AllowedOrigins) == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
