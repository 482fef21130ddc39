package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load 读取 YAML 文件并覆盖默认参数，文件中未出现的字段保留默认值
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	switch {
	case t.Lives <= 0:
		return errors.New("lives must be positive")
	case t.AddDuration <= 0 || t.SubDuration <= 0 || t.MulDuration <= 0 || t.DivDuration <= 0:
		return errors.New("round durations must be positive")
	case t.BalloonTop >= t.BalloonBottom:
		return errors.New("balloon_top must be above balloon_bottom")
	case t.BalloonStep <= 0:
		return errors.New("balloon_step must be positive")
	case t.ChoiceMax-t.ChoiceMin+1 < BalloonCount:
		return fmt.Errorf("choice range must hold at least %d values", BalloonCount)
	case t.ChoiceRetries <= 0:
		return errors.New("choice_retries must be positive")
	case t.FramesPerSecond <= 0:
		return errors.New("fps must be positive")
	}
	return nil
}

// Resolve 把零值参数换成默认值，其余情况必须通过校验
func Resolve(t Tuning) (Tuning, error) {
	if t == (Tuning{}) {
		return Default(), nil
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning: %w", err)
	}
	return t, nil
}
