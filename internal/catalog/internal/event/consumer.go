// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"encoding/json"
	"fmt"

	mq "github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// ViewCounter 消费侧需要的最小能力
type ViewCounter interface {
	IncrViewCnt(ctx context.Context, id int64) error
}

type ViewEventConsumer struct {
	counter  ViewCounter
	consumer mq.Consumer
	logger   *elog.Component
}

func NewViewEventConsumer(counter ViewCounter, q mq.MQ) (*ViewEventConsumer, error) {
	groupID := "catalog_view_group"
	consumer, err := q.Consumer(ViewEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ViewEventConsumer{
		counter:  counter,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ViewEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ViewEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.counter.IncrViewCnt(ctx, evt.ProductId)
	if err != nil {
		// 浏览计数只是人气信号，丢一次不重试
		c.logger.Error("浏览计数自增失败",
			elog.Int64("productId", evt.ProductId), elog.FieldErr(err))
	}
	return err
}

func (c *ViewEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费浏览事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ViewEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
