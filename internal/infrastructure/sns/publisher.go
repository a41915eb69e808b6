package sns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/go-auth-api/internal/config"
)

// RetryPublisher publishes failed notification payloads to an SNS topic
// so delivery can be retried outside the request path.
type RetryPublisher interface {
	Publish(ctx context.Context, subject, payload string) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

func NewRetryPublisher(cfg *config.Config) (RetryPublisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &publisher{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSRetryTopicARN}, nil
}

func (p *publisher) Publish(ctx context.Context, subject, payload string) error {
	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(payload),
	})
	return err
}
