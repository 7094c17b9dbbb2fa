package main

import (
	"Quill/config"
	"Quill/pkg/log"
	"Quill/pkg/rocketmq"
	"Quill/service"

	"go.uber.org/zap"
)

// NewEventPublisher 未配置 RocketMQ 时退化为空实现
func NewEventPublisher(cfg *config.RocketMQConfig) (service.EventPublisher, func(), error) {
	producer, err := rocketmq.NewProducer(cfg)
	if err != nil {
		return nil, nil, err
	}
	if producer == nil {
		log.L.Info("rocketmq endpoint not configured, events disabled")
		return service.NopPublisher{}, func() {}, nil
	}
	return producer, func() {
		if err := producer.Close(); err != nil {
			log.L.Warn("stop producer failed", zap.Error(err))
		}
	}, nil
}
