package config

type MongoDB struct {
	URI        string `mapstructure:"URI" json:"uri" yaml:"uri"`
	Options    string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
	Database   string `mapstructure:"DATABASE" json:"database" yaml:"database"`
	Collection string `mapstructure:"COLLECTION" json:"collection" yaml:"collection"`
}

// DatabaseName 回傳資料庫名稱，未設定時使用預設值
func (m MongoDB) DatabaseName() string {
	if m.Database != "" {
		return m.Database
	}
	return "roster"
}

// CollectionName 回傳員工集合名稱，未設定時使用預設值
func (m MongoDB) CollectionName() string {
	if m.Collection != "" {
		return m.Collection
	}
	return "employees"
}
