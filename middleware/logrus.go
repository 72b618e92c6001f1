package ml

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetReportCaller(false)
	Log.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})
}

// Setup 配置日志输出，logDir 为空时只输出到控制台
func Setup(logDir string, level logrus.Level) error {
	Log.SetLevel(level)
	if logDir == "" {
		Log.SetOutput(os.Stdout)
		gin.DefaultWriter = os.Stdout
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return errors.Wrapf(err, "ml: create log dir %s", logDir)
	}

	// 按天分割
	logFileName := path.Join(logDir, "sanmei") + ".%Y%m%d.log"
	logFileCut, err := LogFileCut(logFileName)
	if err != nil {
		return err
	}

	// 控制台和文件同时输出，gin 也写到同一处
	fileAndStdoutWriter := io.MultiWriter(logFileCut, os.Stdout)
	gin.DefaultWriter = fileAndStdoutWriter
	Log.SetOutput(os.Stdout)
	Log.AddHook(lfshook.NewHook(lfshook.WriterMap{
		logrus.InfoLevel:  logFileCut,
		logrus.FatalLevel: logFileCut,
		logrus.DebugLevel: logFileCut,
		logrus.WarnLevel:  logFileCut,
		logrus.ErrorLevel: logFileCut,
		logrus.PanicLevel: logFileCut,
	}, &logrus.TextFormatter{}))
	return nil
}

// LogFileCut 日志文件切割
func LogFileCut(fileName string) (*rotatelogs.RotateLogs, error) {
	logier, err := rotatelogs.New(
		fileName,
		rotatelogs.WithMaxAge(30*24*time.Hour),    // 文件最大保存时间
		rotatelogs.WithRotationTime(24*time.Hour), // 日志切割时间间隔
	)
	if err != nil {
		return nil, errors.Wrap(err, "ml: rotatelogs")
	}
	return logier, nil
}
