package test

import (
	"go.uber.org/mock/gomock"
	"masto_graph/test/mocks"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Print(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func setupDummyMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().AccountsSaved(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().EdgesSaved(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PageFetched(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().SyncRun().AnyTimes()
	mockMetrics.EXPECT().SyncFailed().AnyTimes()
	mockMetrics.EXPECT().TotalAccounts(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TotalEdges(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DbFileSize(gomock.Any()).AnyTimes()
}
