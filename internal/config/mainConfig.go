package config

type Config struct {
	Application Application `yaml:"Application" env:"APP" flag:""`
	TikTok      TikTok      `yaml:"TikTok" env:"TIKTOK" flag:"tiktok"`
}

type Application struct {
	LogLevel   string `yaml:"LogLevel" env:"LOGLEVEL" cli:"optional" usage:"Уровень логирования: debug, info, warning, error, fatal"`
	TGBotToken string `yaml:"TGBotToken" env:"TG_BOT_TOKEN" flag:"tg-bot-token" cli:"optional" usage:"Токен телеграм бота, пустой - бот не запускается"`
	ProxyURL   string `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" cli:"optional" usage:"Прокси для отправки запросов (http, https, socks5)"`
	ListenAddr string `yaml:"ListenAddr" env:"LISTEN_ADDR" flag:"listen-addr" cli:"optional" usage:"Адрес HTTP API, пустой - API не запускается"`
}

type TikTok struct {
	Host      string   `yaml:"Host" env:"HOST" usage:"Хост мобильного API"`
	RootURL   string   `yaml:"RootURL" env:"ROOT_URL" flag:"root-url" usage:"Корневой адрес платформы"`
	Timeout   Duration `yaml:"Timeout" env:"TIMEOUT" usage:"Таймаут HTTP запросов"`
	UserAgent string   `yaml:"UserAgent" env:"USER_AGENT" flag:"user-agent" cli:"optional" usage:"User-Agent для запросов к API"`
}
